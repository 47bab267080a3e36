// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhq/account-search-service/internal/domain/model"
)

func accountCriteria(name *string) model.AccountSearchCriteria {
	return model.AccountSearchCriteria{
		Name:         name,
		UpdatedAfter: time.Now().UTC().AddDate(0, -12, 0),
		Limit:        20,
	}
}

func TestMockAccountSearcherNameMatch(t *testing.T) {
	searcher := NewMockAccountSearcher()

	tests := []struct {
		name          string
		query         string
		expectedNames []string
	}{
		{
			name:          "case-insensitive substring",
			query:         "ACME",
			expectedNames: []string{"Acme Corp"},
		},
		{
			name:          "substring across words",
			query:         "industri",
			expectedNames: []string{"Globex Industries", "Stark Industrial Group"},
		},
		{
			name:  "no match",
			query: "does-not-exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := searcher.QueryAccounts(context.Background(), accountCriteria(&tt.query))
			require.NoError(t, err)

			names := make([]string, 0, len(result.Accounts))
			for _, account := range result.Accounts {
				names = append(names, account.Name)
			}
			assert.ElementsMatch(t, tt.expectedNames, names)
		})
	}
}

func TestMockAccountSearcherFreshnessWindow(t *testing.T) {
	searcher := NewMockAccountSearcher()

	// Hooli was last updated ~500 days ago, outside the trailing year.
	query := "hooli"
	result, err := searcher.QueryAccounts(context.Background(), accountCriteria(&query))
	require.NoError(t, err)
	assert.Empty(t, result.Accounts)
}

func TestMockAccountSearcherDefaultListing(t *testing.T) {
	searcher := NewMockAccountSearcher()

	result, err := searcher.QueryAccounts(context.Background(), accountCriteria(nil))
	require.NoError(t, err)
	require.NotEmpty(t, result.Accounts)

	for _, account := range result.Accounts {
		// The default listing only serves accounts with a real region
		// classification.
		assert.True(t, account.HasRegion(), "account %s has no region", account.Name)
		assert.NotEqual(t, "Wayne Logistics", account.Name, "Unknown region must not count")
	}
}

func TestMockAccountSearcherEligibility(t *testing.T) {
	searcher := NewMockAccountSearcher()
	searcher.ClearAccounts()
	searcher.AddAccount(model.Account{
		ID:        "001BARE000000X",
		Name:      "Bare Account",
		Type:      "Prospect",
		UpdatedAt: timePtr(time.Now().UTC().AddDate(0, 0, -1)),
	})

	// A named search skips accounts without region, website or CRM link.
	query := "bare"
	result, err := searcher.QueryAccounts(context.Background(), accountCriteria(&query))
	require.NoError(t, err)
	assert.Empty(t, result.Accounts)

	// A website alone restores eligibility.
	searcher.ClearAccounts()
	searcher.AddAccount(model.Account{
		ID:        "001SITE000000X",
		Name:      "Bare Account With Site",
		Type:      "Prospect",
		UpdatedAt: timePtr(time.Now().UTC().AddDate(0, 0, -1)),
		Website:   strPtr("https://bare.example"),
	})
	result, err = searcher.QueryAccounts(context.Background(), accountCriteria(&query))
	require.NoError(t, err)
	assert.Len(t, result.Accounts, 1)
}

func TestMockAccountSearcherFailWith(t *testing.T) {
	searcher := NewMockAccountSearcher()
	injected := fmt.Errorf("injected failure")
	searcher.FailWith(injected)

	_, err := searcher.QueryAccounts(context.Background(), accountCriteria(nil))
	assert.ErrorIs(t, err, injected)
	assert.Error(t, searcher.IsReady(context.Background()))

	searcher.FailWith(nil)
	_, err = searcher.QueryAccounts(context.Background(), accountCriteria(nil))
	assert.NoError(t, err)
	assert.NoError(t, searcher.IsReady(context.Background()))
}

func timePtr(t time.Time) *time.Time { return &t }
