// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/feedbackhq/account-search-service/internal/domain/model"
)

// AccountSearcher defines the behavior for account lookups.
// This abstraction allows different backends (warehouse gateway,
// OpenSearch, mock) without the service layer knowing which is wired.
type AccountSearcher interface {
	// QueryAccounts searches for accounts matching the provided criteria.
	QueryAccounts(ctx context.Context, criteria model.AccountSearchCriteria) (*model.AccountSearchResult, error)

	// IsReady checks if the backend is ready to serve lookups.
	IsReady(ctx context.Context) error
}

// OpportunitySearcher defines the behavior for opportunity lookups
// scoped to a single account.
type OpportunitySearcher interface {
	// QueryOpportunities returns the opportunities matching the criteria.
	QueryOpportunities(ctx context.Context, criteria model.OpportunitySearchCriteria) ([]model.Opportunity, error)

	// IsReady checks if the backend is ready to serve lookups.
	IsReady(ctx context.Context) error
}
