// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/feedbackhq/account-search-service/internal/domain/model"
	"github.com/feedbackhq/account-search-service/pkg/errors"
)

// MockOpportunitySearcher is an in-memory implementation of
// OpportunitySearcher keyed by account identifier.
type MockOpportunitySearcher struct {
	mu            sync.Mutex
	opportunities map[string][]model.Opportunity
	failWith      error
}

// NewMockOpportunitySearcher creates a mock searcher seeded with sample
// opportunities for the accounts in NewMockAccountSearcher.
func NewMockOpportunitySearcher() *MockOpportunitySearcher {
	now := time.Now().UTC()
	closeIn := func(days int) time.Time {
		t := now.AddDate(0, 0, days)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	return &MockOpportunitySearcher{
		opportunities: map[string][]model.Opportunity{
			"001AC0MEQ7YN3X": {
				{
					ID:                 "006ACMEEXP01",
					Name:               "Acme Corp - Expansion FY26",
					NewAndExpansionARR: 48000,
					Stage:              "Negotiation",
					CloseOn:            closeIn(45),
				},
				{
					ID:                 "006ACMERENEW",
					Name:               "Acme Corp - Renewal",
					NewAndExpansionARR: 12000,
					Stage:              "Closed Won",
					CloseOn:            closeIn(-30),
				},
			},
			"001GLOBEX88KQZ": {
				{
					ID:                 "006GLBXNEW77",
					Name:               "Globex - Platform Rollout",
					NewAndExpansionARR: 150000,
					Stage:              "Proposal",
					CloseOn:            closeIn(120),
				},
				{
					ID:                 "006GLBXPOC12",
					Name:               "Globex - Pilot Conversion",
					NewAndExpansionARR: 30000,
					Stage:              "Discovery",
					CloseOn:            closeIn(10),
				},
			},
			"001TYRELL31NC8": {
				{
					ID:                 "006TYRLUPG03",
					Name:               "Tyrell - Tier Upgrade",
					NewAndExpansionARR: 95000,
					Stage:              "Negotiation",
					CloseOn:            closeIn(-14),
				},
			},
		},
	}
}

// QueryOpportunities implements the OpportunitySearcher port with mock data.
func (m *MockOpportunitySearcher) QueryOpportunities(ctx context.Context, criteria model.OpportunitySearchCriteria) ([]model.Opportunity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}

	slog.DebugContext(ctx, "executing mock opportunity search",
		"account_id", criteria.AccountID,
	)

	var matched []model.Opportunity
	for _, opp := range m.opportunities[criteria.AccountID] {
		if opp.CloseOn.Before(criteria.ClosingOnOrAfter) {
			continue
		}
		matched = append(matched, opp)
	}

	return matched, nil
}

// IsReady implements the OpportunitySearcher port.
func (m *MockOpportunitySearcher) IsReady(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return errors.NewServiceUnavailable("mock opportunity searcher is failing", m.failWith)
	}
	return nil
}

// SetOpportunities replaces the opportunities for one account.
func (m *MockOpportunitySearcher) SetOpportunities(accountID string, opportunities []model.Opportunity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opportunities[accountID] = opportunities
}

// FailWith makes every subsequent query return err. Passing nil restores
// normal behavior.
func (m *MockOpportunitySearcher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}
