// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package handler exposes the search services over HTTP with the JSON
// envelopes the feedback tracker's form components consume.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/feedbackhq/account-search-service/internal/service"
	"github.com/feedbackhq/account-search-service/pkg/api"
)

// AccountsHandler serves GET /api/accounts/search.
type AccountsHandler struct {
	accountService service.AccountSearcher
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(accountService service.AccountSearcher) *AccountsHandler {
	return &AccountsHandler{accountService: accountService}
}

// Search resolves the free-text q parameter into an ordered account
// list. An empty or absent q yields the default recently-updated
// listing; zero matches is a success, not an error.
func (h *AccountsHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	slog.DebugContext(ctx, "handling account search",
		"q", query,
	)

	result, err := h.accountService.Search(ctx, query)
	if err != nil {
		writeError(ctx, w, "failed to search accounts", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.SearchAccountsResponse{
		Success:  true,
		Accounts: toAPIAccounts(result.Accounts),
		Count:    result.Total,
	})
}
