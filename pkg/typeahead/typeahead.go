// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package typeahead implements the interaction state machines behind the
// account/opportunity select control: a debounced search session, an
// opportunity picker with default selection, and the displayed-selection
// reconciler. All types are safe for concurrent use and never panic on
// network failure; errors surface as state.
package typeahead

import (
	"context"

	"github.com/feedbackhq/account-search-service/pkg/api"
)

// AccountFetcher is the slice of the API client the search session needs.
type AccountFetcher interface {
	// SearchAccounts resolves a free-text query into an ordered account
	// list. An empty query requests the default listing.
	SearchAccounts(ctx context.Context, query string) ([]api.Account, error)
}

// OpportunityFetcher is the slice of the API client the picker needs.
type OpportunityFetcher interface {
	// OpportunitiesByAccount returns the open opportunities for one
	// account, revenue descending.
	OpportunitiesByAccount(ctx context.Context, accountID string) ([]api.Opportunity, error)
}
