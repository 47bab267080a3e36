// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/feedbackhq/account-search-service/internal/domain/model"
	"github.com/feedbackhq/account-search-service/internal/domain/port"
	"github.com/feedbackhq/account-search-service/pkg/constants"
)

// accountFreshnessWindow excludes accounts the warehouse has not touched
// in the trailing twelve months.
const accountFreshnessWindow = 12

// AccountSearcher defines the interface for account search operations.
type AccountSearcher interface {
	// Search resolves a free-text query into an ordered account list.
	Search(ctx context.Context, query string) (*model.AccountSearchResult, error)

	// IsReady checks if the search backend is ready.
	IsReady(ctx context.Context) error
}

// AccountSearch handles account search business logic. It depends on the
// backend abstraction rather than a concrete implementation.
type AccountSearch struct {
	accountSearcher port.AccountSearcher
	now             func() time.Time
}

// NewAccountSearch creates a new AccountSearch instance.
func NewAccountSearch(accountSearcher port.AccountSearcher) AccountSearcher {
	return &AccountSearch{
		accountSearcher: accountSearcher,
		now:             time.Now,
	}
}

// Search trims the raw query, delegates to the backend and enforces the
// response contract: revenue descending with absent values last, ties
// broken by recency, at most MaxSearchResults rows. An empty trimmed
// query yields the default "recently updated" listing.
func (s *AccountSearch) Search(ctx context.Context, query string) (*model.AccountSearchResult, error) {
	name := strings.TrimSpace(query)

	slog.DebugContext(ctx, "starting account search",
		"query", name,
	)

	criteria := model.AccountSearchCriteria{
		UpdatedAfter: s.now().AddDate(0, -accountFreshnessWindow, 0),
		Limit:        constants.MaxSearchResults,
	}
	if name != "" {
		criteria.Name = &name
	}

	result, err := s.accountSearcher.QueryAccounts(ctx, criteria)
	if err != nil {
		slog.ErrorContext(ctx, "account search operation failed",
			"query", name,
			"error", err,
		)
		return nil, err
	}

	sortAccounts(result.Accounts)
	if len(result.Accounts) > constants.MaxSearchResults {
		result.Accounts = result.Accounts[:constants.MaxSearchResults]
	}
	result.Total = len(result.Accounts)

	slog.DebugContext(ctx, "account search completed",
		"query", name,
		"count", result.Total,
	)

	return result, nil
}

// IsReady checks if the search backend is ready.
func (s *AccountSearch) IsReady(ctx context.Context) error {
	return s.accountSearcher.IsReady(ctx)
}

// sortAccounts orders accounts by annual recurring revenue descending
// with absent revenue strictly last, breaking ties by last-updated
// descending with unknown timestamps last.
func sortAccounts(accounts []model.Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		a, b := accounts[i], accounts[j]

		switch {
		case a.AnnualRecurringRevenue != nil && b.AnnualRecurringRevenue == nil:
			return true
		case a.AnnualRecurringRevenue == nil && b.AnnualRecurringRevenue != nil:
			return false
		case a.AnnualRecurringRevenue != nil && b.AnnualRecurringRevenue != nil:
			if *a.AnnualRecurringRevenue != *b.AnnualRecurringRevenue {
				return *a.AnnualRecurringRevenue > *b.AnnualRecurringRevenue
			}
		}

		switch {
		case a.UpdatedAt != nil && b.UpdatedAt == nil:
			return true
		case a.UpdatedAt == nil || b.UpdatedAt == nil:
			return false
		default:
			return a.UpdatedAt.After(*b.UpdatedAt)
		}
	})
}
