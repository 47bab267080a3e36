// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package warehouse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/feedbackhq/account-search-service/internal/domain/model"
)

// Searcher implements both search ports against the warehouse gateway.
// Filtering and windowing happen in the gateway's SQL; the service layer
// still owns final ordering and the result cap.
type Searcher struct {
	client *Client
}

// NewSearcher creates a warehouse-backed searcher and verifies the
// gateway is reachable.
func NewSearcher(ctx context.Context, config Config) (*Searcher, error) {
	client := NewClient(config)

	if err := client.IsReady(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse gateway: %w", err)
	}

	slog.InfoContext(ctx, "warehouse searcher initialized",
		"base_url", config.BaseURL,
	)

	return &Searcher{client: client}, nil
}

// QueryAccounts implements the AccountSearcher port.
func (s *Searcher) QueryAccounts(ctx context.Context, criteria model.AccountSearchCriteria) (*model.AccountSearchResult, error) {
	slog.DebugContext(ctx, "querying accounts via warehouse gateway",
		"name", criteria.Name,
	)

	response, err := s.client.SearchAccounts(ctx, criteria.Name, criteria.UpdatedAfter, criteria.Limit)
	if err != nil {
		return nil, err
	}

	accounts := make([]model.Account, 0, len(response.Rows))
	for _, row := range response.Rows {
		accounts = append(accounts, toDomainAccount(row))
	}

	return &model.AccountSearchResult{
		Accounts: accounts,
		Total:    len(accounts),
	}, nil
}

// QueryOpportunities implements the OpportunitySearcher port.
func (s *Searcher) QueryOpportunities(ctx context.Context, criteria model.OpportunitySearchCriteria) ([]model.Opportunity, error) {
	slog.DebugContext(ctx, "querying opportunities via warehouse gateway",
		"account_id", criteria.AccountID,
	)

	response, err := s.client.OpportunitiesByAccount(ctx, criteria.AccountID, criteria.ClosingOnOrAfter, criteria.Limit)
	if err != nil {
		return nil, err
	}

	opportunities := make([]model.Opportunity, 0, len(response.Rows))
	for _, row := range response.Rows {
		opportunities = append(opportunities, toDomainOpportunity(row))
	}

	return opportunities, nil
}

// IsReady implements the readiness check of both ports.
func (s *Searcher) IsReady(ctx context.Context) error {
	return s.client.IsReady(ctx)
}
