// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package opensearch

import "encoding/json"

// Config represents OpenSearch configuration.
type Config struct {
	URL   string `json:"url"`
	Index string `json:"index"`
}

// SearchResponse represents the OpenSearch search response.
type SearchResponse struct {
	Hits `json:"hits"`
}

// Hits represents the hits in the search response.
type Hits struct {
	Total `json:"total"`
	Hits  []Hit `json:"hits"`
}

// Total represents the total number of hits.
type Total struct {
	Value int `json:"value"`
}

// Hit represents a single search result hit.
type Hit struct {
	ID     string          `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

// accountDocument is the indexed shape of a warehouse account row.
type accountDocument struct {
	AccountID                  string   `json:"sfdc_account_id"`
	AccountName                string   `json:"account_name"`
	AccountType                string   `json:"account_type"`
	RegionName                 *string  `json:"region_name,omitempty"`
	AnnualRecurringRevenue     *float64 `json:"annual_recurring_revenue,omitempty"`
	IsActiveEnterpriseCustomer *bool    `json:"is_active_enterprise_customer,omitempty"`
	UpdatedAt                  *string  `json:"updated_at,omitempty"`
	AccountLink                *string  `json:"account_link,omitempty"`
	Website                    *string  `json:"website,omitempty"`
}
