// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package model

import "time"

// AccountSearchCriteria encapsulates the parameters of an account lookup.
type AccountSearchCriteria struct {
	// Name is a case-insensitive substring to match against the account
	// name. Nil requests the default "recently updated" listing.
	Name *string
	// UpdatedAfter excludes accounts not touched since this instant.
	UpdatedAfter time.Time
	// Limit caps the number of rows the backend should return.
	Limit int
}

// AccountSearchResult contains the results of an account search.
type AccountSearchResult struct {
	// Accounts found, ordered by the endpoint contract.
	Accounts []Account
	// Total number of accounts returned.
	Total int
}

// OpportunitySearchCriteria encapsulates the parameters of an
// opportunities-by-account lookup.
type OpportunitySearchCriteria struct {
	// AccountID scopes the lookup to a single account. Required.
	AccountID string
	// ClosingOnOrAfter excludes opportunities that closed before this date.
	ClosingOnOrAfter time.Time
	// Limit caps the number of rows the backend should return.
	Limit int
}
