// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package model

import (
	"strings"
	"time"
)

// Account represents a CRM account sourced from the analytics warehouse.
// All fields are read-only snapshots taken at fetch time.
type Account struct {
	// ID is the opaque CRM identifier, stable per account and unique
	// within a result set.
	ID string
	// Name is the account display name.
	Name string
	// Type is the account classification.
	Type string
	// Region is the sales region, when classified.
	Region *string
	// AnnualRecurringRevenue is nullable: absent is not the same as zero.
	AnnualRecurringRevenue *float64
	// IsActiveEnterpriseCustomer flags active enterprise customers.
	IsActiveEnterpriseCustomer *bool
	// UpdatedAt is the last warehouse update timestamp.
	UpdatedAt *time.Time
	// AccountLink is the canonical CRM link for the account.
	AccountLink *string
	// Website is the account's website URL.
	Website *string
}

// HasRegion reports whether the account carries a non-trivial region
// classification.
func (a Account) HasRegion() bool {
	if a.Region == nil {
		return false
	}
	region := strings.TrimSpace(*a.Region)
	return region != "" && !strings.EqualFold(region, "unknown")
}

// HasWebsite reports whether a website URL is known for the account.
func (a Account) HasWebsite() bool {
	return a.Website != nil && strings.TrimSpace(*a.Website) != ""
}

// HasAccountLink reports whether a canonical CRM link is known.
func (a Account) HasAccountLink() bool {
	return a.AccountLink != nil && strings.TrimSpace(*a.AccountLink) != ""
}
