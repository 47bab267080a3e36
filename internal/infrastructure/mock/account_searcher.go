// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/feedbackhq/account-search-service/internal/domain/model"
	"github.com/feedbackhq/account-search-service/pkg/errors"
)

// MockAccountSearcher is an in-memory implementation of AccountSearcher.
// It applies the full filter contract of the warehouse lookup so local
// development and tests exercise the same semantics.
type MockAccountSearcher struct {
	mu       sync.Mutex
	accounts []model.Account
	failWith error
}

// NewMockAccountSearcher creates a mock searcher seeded with sample data.
func NewMockAccountSearcher() *MockAccountSearcher {
	now := time.Now().UTC()
	recent := func(daysAgo int) *time.Time {
		t := now.AddDate(0, 0, -daysAgo)
		return &t
	}

	return &MockAccountSearcher{
		accounts: []model.Account{
			{
				ID:                         "001AC0MEQ7YN3X",
				Name:                       "Acme Corp",
				Type:                       "Customer",
				Region:                     strPtr("AMER"),
				AnnualRecurringRevenue:     floatPtr(120000),
				IsActiveEnterpriseCustomer: boolPtr(true),
				UpdatedAt:                  recent(3),
				AccountLink:                strPtr("https://crm.example.com/accounts/001AC0MEQ7YN3X"),
				Website:                    strPtr("https://acme.example"),
			},
			{
				ID:                     "001GLOBEX88KQZ",
				Name:                   "Globex Industries",
				Type:                   "Customer",
				Region:                 strPtr("EMEA"),
				AnnualRecurringRevenue: floatPtr(640000),
				UpdatedAt:              recent(11),
				Website:                strPtr("https://globex.example"),
			},
			{
				ID:        "001INITRODE4FM",
				Name:      "Initrode Solutions",
				Type:      "Prospect",
				Region:    strPtr("APAC"),
				UpdatedAt: recent(40),
			},
			{
				ID:                     "001STARKIND02P",
				Name:                   "Stark Industrial Group",
				Type:                   "Customer",
				AnnualRecurringRevenue: floatPtr(275000),
				UpdatedAt:              recent(25),
				Website:                strPtr("https://stark-industrial.example"),
			},
			{
				ID:        "001WAYNE55RT0B",
				Name:      "Wayne Logistics",
				Type:      "Churned",
				Region:    strPtr("Unknown"),
				UpdatedAt: recent(9),
			},
			{
				ID:                     "001TYRELL31NC8",
				Name:                   "Tyrell Biotech",
				Type:                   "Customer",
				Region:                 strPtr("AMER"),
				AnnualRecurringRevenue: floatPtr(640000),
				UpdatedAt:              recent(2),
				AccountLink:            strPtr("https://crm.example.com/accounts/001TYRELL31NC8"),
			},
			{
				ID:        "001HOOLI9920XX",
				Name:      "Hooli Cloud Services",
				Type:      "Prospect",
				Region:    strPtr("AMER"),
				UpdatedAt: recent(500),
				Website:   strPtr("https://hooli-cloud.example"),
			},
		},
	}
}

// QueryAccounts implements the AccountSearcher port with mock data.
func (m *MockAccountSearcher) QueryAccounts(ctx context.Context, criteria model.AccountSearchCriteria) (*model.AccountSearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}

	slog.DebugContext(ctx, "executing mock account search",
		"name", criteria.Name,
	)

	var matched []model.Account
	for _, account := range m.accounts {
		if account.UpdatedAt == nil || account.UpdatedAt.Before(criteria.UpdatedAfter) {
			continue
		}

		if criteria.Name == nil {
			// Default listing: recently updated accounts with a region
			// classification.
			if account.HasRegion() {
				matched = append(matched, account)
			}
			continue
		}

		if !strings.Contains(strings.ToLower(account.Name), strings.ToLower(*criteria.Name)) {
			continue
		}
		if account.HasRegion() || account.HasWebsite() || account.HasAccountLink() {
			matched = append(matched, account)
		}
	}

	return &model.AccountSearchResult{
		Accounts: matched,
		Total:    len(matched),
	}, nil
}

// IsReady implements the AccountSearcher port. The mock is always ready
// unless a failure was injected.
func (m *MockAccountSearcher) IsReady(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return errors.NewServiceUnavailable("mock account searcher is failing", m.failWith)
	}
	return nil
}

// AddAccount adds an account to the mock data set.
func (m *MockAccountSearcher) AddAccount(account model.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, account)
}

// ClearAccounts removes all accounts.
func (m *MockAccountSearcher) ClearAccounts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = nil
}

// FailWith makes every subsequent query return err. Passing nil restores
// normal behavior.
func (m *MockAccountSearcher) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
