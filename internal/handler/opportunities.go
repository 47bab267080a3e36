// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/feedbackhq/account-search-service/internal/service"
	"github.com/feedbackhq/account-search-service/pkg/api"
)

// OpportunitiesHandler serves GET /api/opportunities/by-account.
type OpportunitiesHandler struct {
	opportunityService service.OpportunitySearcher
}

// NewOpportunitiesHandler creates a new OpportunitiesHandler.
func NewOpportunitiesHandler(opportunityService service.OpportunitySearcher) *OpportunitiesHandler {
	return &OpportunitiesHandler{opportunityService: opportunityService}
}

// ByAccount returns the open opportunities for the accountId parameter,
// revenue descending. A missing accountId is rejected with 400 before
// any backend call.
func (h *OpportunitiesHandler) ByAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	accountID := r.URL.Query().Get("accountId")

	slog.DebugContext(ctx, "handling opportunity search",
		"account_id", accountID,
	)

	opportunities, err := h.opportunityService.ByAccount(ctx, accountID)
	if err != nil {
		writeError(ctx, w, "failed to fetch opportunities", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.OpportunitiesResponse{
		Success:       true,
		Opportunities: toAPIOpportunities(opportunities),
	})
}
