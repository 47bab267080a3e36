// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package model

import "time"

// Opportunity represents an open opportunity belonging to exactly one
// account at fetch time. The set returned for an account is a snapshot,
// not a subscription.
type Opportunity struct {
	// ID is the opaque CRM identifier of the opportunity.
	ID string
	// Name is the opportunity display name.
	Name string
	// NewAndExpansionARR is the new-and-expansion recurring revenue figure.
	NewAndExpansionARR float64
	// Stage is a free-text stage label.
	Stage string
	// CloseOn is the expected close date, normalized to UTC midnight.
	// It may be in the past or the future.
	CloseOn time.Time
}
