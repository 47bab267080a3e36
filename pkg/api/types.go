// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package api defines the wire contract of the account search service.
// Field names mirror the warehouse export columns and must not change,
// existing consumers of the feedback tracker depend on them.
package api

import (
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date exchanged as an ISO YYYY-MM-DD string.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("close date must be a string: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid close date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Account is a CRM account row as served by the search endpoint.
// Revenue is nullable: an absent value is not the same as zero and
// sorts after every present value.
type Account struct {
	ID                         string     `json:"SFDC_ACCOUNT_ID"`
	Name                       string     `json:"ACCOUNT_NAME"`
	Type                       string     `json:"ACCOUNT_TYPE"`
	Region                     *string    `json:"REGION_NAME,omitempty"`
	AnnualRecurringRevenue     *float64   `json:"ANNUAL_RECURRING_REVENUE,omitempty"`
	IsActiveEnterpriseCustomer *bool      `json:"IS_ACTIVE_ENTERPRISE_CUSTOMER,omitempty"`
	UpdatedAt                  *time.Time `json:"UPDATED_AT,omitempty"`
	AccountLink                *string    `json:"ACCOUNT_LINK,omitempty"`
	Website                    *string    `json:"WEBSITE,omitempty"`
}

// Opportunity is an open opportunity row scoped to a single account.
type Opportunity struct {
	ID                 string  `json:"SFDC_OPPORTUNITY_ID"`
	Name               string  `json:"OPPORTUNITY_NAME"`
	NewAndExpansionARR float64 `json:"NEW_AND_EXPANSION_ANNUAL_RECURRING_REVENUE"`
	Stage              string  `json:"OPPORTUNITY_STAGE"`
	CloseOn            Date    `json:"CLOSE_ON"`
}

// SearchAccountsResponse is the success envelope of GET /api/accounts/search.
type SearchAccountsResponse struct {
	Success  bool      `json:"success"`
	Accounts []Account `json:"accounts"`
	Count    int       `json:"count"`
}

// OpportunitiesResponse is the success envelope of GET /api/opportunities/by-account.
type OpportunitiesResponse struct {
	Success       bool          `json:"success"`
	Opportunities []Opportunity `json:"opportunities"`
}

// ErrorResponse is the failure envelope shared by both endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
