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
	"github.com/feedbackhq/account-search-service/pkg/errors"
)

// opportunityCloseWindow includes opportunities that closed up to six
// months ago alongside everything still open.
const opportunityCloseWindow = 6

// OpportunitySearcher defines the interface for opportunities-by-account
// operations.
type OpportunitySearcher interface {
	// ByAccount returns the open opportunities for one account, revenue
	// descending.
	ByAccount(ctx context.Context, accountID string) ([]model.Opportunity, error)

	// IsReady checks if the search backend is ready.
	IsReady(ctx context.Context) error
}

// OpportunitySearch handles opportunity lookup business logic.
type OpportunitySearch struct {
	opportunitySearcher port.OpportunitySearcher
	now                 func() time.Time
}

// NewOpportunitySearch creates a new OpportunitySearch instance.
func NewOpportunitySearch(opportunitySearcher port.OpportunitySearcher) OpportunitySearcher {
	return &OpportunitySearch{
		opportunitySearcher: opportunitySearcher,
		now:                 time.Now,
	}
}

// ByAccount validates the account identifier, delegates to the backend
// and enforces revenue-descending order capped at MaxSearchResults.
func (s *OpportunitySearch) ByAccount(ctx context.Context, accountID string) ([]model.Opportunity, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, errors.NewValidation("accountId is required")
	}

	slog.DebugContext(ctx, "starting opportunity search",
		"account_id", accountID,
	)

	criteria := model.OpportunitySearchCriteria{
		AccountID:        accountID,
		ClosingOnOrAfter: s.now().AddDate(0, -opportunityCloseWindow, 0),
		Limit:            constants.MaxSearchResults,
	}

	opportunities, err := s.opportunitySearcher.QueryOpportunities(ctx, criteria)
	if err != nil {
		slog.ErrorContext(ctx, "opportunity search operation failed",
			"account_id", accountID,
			"error", err,
		)
		return nil, err
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].NewAndExpansionARR > opportunities[j].NewAndExpansionARR
	})
	if len(opportunities) > constants.MaxSearchResults {
		opportunities = opportunities[:constants.MaxSearchResults]
	}

	slog.DebugContext(ctx, "opportunity search completed",
		"account_id", accountID,
		"count", len(opportunities),
	)

	return opportunities, nil
}

// IsReady checks if the search backend is ready.
func (s *OpportunitySearch) IsReady(ctx context.Context) error {
	return s.opportunitySearcher.IsReady(ctx)
}
