// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhq/account-search-service/internal/domain/model"
	"github.com/feedbackhq/account-search-service/pkg/constants"
)

// stubAccountSearcher records the criteria it receives and returns a
// canned result.
type stubAccountSearcher struct {
	criteria model.AccountSearchCriteria
	accounts []model.Account
	err      error
}

func (s *stubAccountSearcher) QueryAccounts(_ context.Context, criteria model.AccountSearchCriteria) (*model.AccountSearchResult, error) {
	s.criteria = criteria
	if s.err != nil {
		return nil, s.err
	}
	return &model.AccountSearchResult{
		Accounts: s.accounts,
		Total:    len(s.accounts),
	}, nil
}

func (s *stubAccountSearcher) IsReady(_ context.Context) error {
	return s.err
}

func newTestAccountSearch(stub *stubAccountSearcher, now time.Time) *AccountSearch {
	return &AccountSearch{
		accountSearcher: stub,
		now:             func() time.Time { return now },
	}
}

func TestAccountSearchCriteria(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		expectedName *string
	}{
		{
			name:         "query is trimmed before matching",
			query:        "  acme  ",
			expectedName: stringPtr("acme"),
		},
		{
			name:         "empty query requests the default listing",
			query:        "",
			expectedName: nil,
		},
		{
			name:         "whitespace-only query requests the default listing",
			query:        "   ",
			expectedName: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAccountSearcher{}
			svc := newTestAccountSearch(stub, now)

			_, err := svc.Search(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedName, stub.criteria.Name)
			assert.Equal(t, constants.MaxSearchResults, stub.criteria.Limit)
			// Freshness window is twelve months back from now.
			assert.Equal(t, now.AddDate(0, -12, 0), stub.criteria.UpdatedAfter)
		})
	}
}

func TestAccountSearchOrdering(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -1)
	older := now.AddDate(0, 0, -30)

	tests := []struct {
		name     string
		accounts []model.Account
		expected []string
	}{
		{
			name: "revenue descending",
			accounts: []model.Account{
				{ID: "low", AnnualRecurringRevenue: floatPtr(1000)},
				{ID: "high", AnnualRecurringRevenue: floatPtr(90000)},
				{ID: "mid", AnnualRecurringRevenue: floatPtr(5000)},
			},
			expected: []string{"high", "mid", "low"},
		},
		{
			name: "absent revenue sorts strictly last",
			accounts: []model.Account{
				{ID: "none-a", UpdatedAt: &recent},
				{ID: "tiny", AnnualRecurringRevenue: floatPtr(1)},
				{ID: "none-b", UpdatedAt: &older},
			},
			expected: []string{"tiny", "none-a", "none-b"},
		},
		{
			name: "revenue ties break by recency",
			accounts: []model.Account{
				{ID: "stale", AnnualRecurringRevenue: floatPtr(500), UpdatedAt: &older},
				{ID: "fresh", AnnualRecurringRevenue: floatPtr(500), UpdatedAt: &recent},
			},
			expected: []string{"fresh", "stale"},
		},
		{
			name: "tie with unknown timestamp sorts after known",
			accounts: []model.Account{
				{ID: "unknown", AnnualRecurringRevenue: floatPtr(500)},
				{ID: "known", AnnualRecurringRevenue: floatPtr(500), UpdatedAt: &older},
			},
			expected: []string{"known", "unknown"},
		},
		{
			name: "zero revenue still outranks absent revenue",
			accounts: []model.Account{
				{ID: "absent"},
				{ID: "zero", AnnualRecurringRevenue: floatPtr(0)},
			},
			expected: []string{"zero", "absent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAccountSearcher{accounts: tt.accounts}
			svc := newTestAccountSearch(stub, now)

			result, err := svc.Search(context.Background(), "anything")
			require.NoError(t, err)

			ids := make([]string, 0, len(result.Accounts))
			for _, account := range result.Accounts {
				ids = append(ids, account.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestAccountSearchCapsResults(t *testing.T) {
	accounts := make([]model.Account, 0, constants.MaxSearchResults+15)
	for i := 0; i < constants.MaxSearchResults+15; i++ {
		arr := float64(1000 * (i + 1))
		accounts = append(accounts, model.Account{
			ID:                     fmt.Sprintf("acct-%02d", i),
			AnnualRecurringRevenue: &arr,
		})
	}

	stub := &stubAccountSearcher{accounts: accounts}
	svc := newTestAccountSearch(stub, time.Now())

	result, err := svc.Search(context.Background(), "cap")
	require.NoError(t, err)

	assert.Len(t, result.Accounts, constants.MaxSearchResults)
	assert.Equal(t, constants.MaxSearchResults, result.Total)
	// The cap keeps the highest-revenue rows.
	assert.Equal(t, "acct-34", result.Accounts[0].ID)
}

func TestAccountSearchBackendError(t *testing.T) {
	stub := &stubAccountSearcher{err: fmt.Errorf("warehouse is down")}
	svc := newTestAccountSearch(stub, time.Now())

	result, err := svc.Search(context.Background(), "acme")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestAccountSearchIsReady(t *testing.T) {
	stub := &stubAccountSearcher{}
	svc := newTestAccountSearch(stub, time.Now())
	assert.NoError(t, svc.IsReady(context.Background()))

	stub.err = fmt.Errorf("not ready")
	assert.Error(t, svc.IsReady(context.Background()))
}

func stringPtr(s string) *string  { return &s }
func floatPtr(f float64) *float64 { return &f }
