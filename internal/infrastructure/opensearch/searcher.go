// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package opensearch implements the account search port against an
// OpenSearch index fed from the warehouse account export. It serves
// deployments where the warehouse gateway is too slow for typeahead.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"text/template"
	"time"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/feedbackhq/account-search-service/internal/domain/model"
)

var queryAccountsTemplate = template.Must(
	template.New("queryAccounts").
		Funcs(template.FuncMap{
			"quote": strconv.Quote,
		}).
		Parse(queryAccountsSource))

// templateData carries the values rendered into the account query.
type templateData struct {
	Name         string
	UpdatedAfter string
	Size         int
}

// SearchClientRetriever defines the interface for OpenSearch operations.
// This allows for easy mocking and testing.
type SearchClientRetriever interface {
	Search(ctx context.Context, index string, query []byte) (*SearchResponse, error)
}

// Searcher implements the AccountSearcher port for OpenSearch.
type Searcher struct {
	client SearchClientRetriever
	index  string
}

// QueryAccounts implements the AccountSearcher port.
func (s *Searcher) QueryAccounts(ctx context.Context, criteria model.AccountSearchCriteria) (*model.AccountSearchResult, error) {
	query, err := s.Render(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to render query: %w", err)
	}

	response, err := s.client.Search(ctx, s.index, query)
	if err != nil {
		return nil, fmt.Errorf("opensearch search failed: %w", err)
	}

	result, err := s.convertResponse(ctx, response)
	if err != nil {
		return nil, fmt.Errorf("failed to convert search response: %w", err)
	}

	slog.DebugContext(ctx, "opensearch account search completed",
		"results_count", len(result.Accounts),
	)
	return result, nil
}

// Render generates the OpenSearch query for the provided criteria.
func (s *Searcher) Render(ctx context.Context, criteria model.AccountSearchCriteria) ([]byte, error) {
	data := templateData{
		UpdatedAfter: criteria.UpdatedAfter.UTC().Format(time.RFC3339),
		Size:         criteria.Limit,
	}
	if criteria.Name != nil {
		data.Name = *criteria.Name
	}

	var buf bytes.Buffer
	if err := queryAccountsTemplate.Execute(&buf, data); err != nil {
		slog.ErrorContext(ctx, "failed to render query template", "error", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// convertResponse converts an OpenSearch response to domain accounts.
func (s *Searcher) convertResponse(ctx context.Context, response *SearchResponse) (*model.AccountSearchResult, error) {
	result := &model.AccountSearchResult{
		Accounts: make([]model.Account, 0, len(response.Hits.Hits)),
	}

	for _, hit := range response.Hits.Hits {
		account, err := convertHit(hit)
		if err != nil {
			// Skip the malformed document, keep the rest of the page.
			slog.ErrorContext(ctx, "failed to convert hit", "hit_id", hit.ID, "error", err)
			continue
		}
		result.Accounts = append(result.Accounts, account)
	}
	result.Total = len(result.Accounts)

	return result, nil
}

// convertHit converts a single OpenSearch hit to a domain account.
func convertHit(hit Hit) (model.Account, error) {
	var doc accountDocument
	if err := json.Unmarshal(hit.Source, &doc); err != nil {
		return model.Account{}, fmt.Errorf("failed to unmarshal source data: %w", err)
	}

	account := model.Account{
		ID:                         doc.AccountID,
		Name:                       doc.AccountName,
		Type:                       doc.AccountType,
		Region:                     doc.RegionName,
		AnnualRecurringRevenue:     doc.AnnualRecurringRevenue,
		IsActiveEnterpriseCustomer: doc.IsActiveEnterpriseCustomer,
		AccountLink:                doc.AccountLink,
		Website:                    doc.Website,
	}
	if account.ID == "" {
		account.ID = hit.ID
	}

	if doc.UpdatedAt != nil {
		updatedAt, err := time.Parse(time.RFC3339, *doc.UpdatedAt)
		if err != nil {
			return model.Account{}, fmt.Errorf("invalid updated_at %q: %w", *doc.UpdatedAt, err)
		}
		account.UpdatedAt = &updatedAt
	}

	return account, nil
}

// IsReady reports whether the index is reachable. A query that renders
// but cannot execute marks the backend not ready.
func (s *Searcher) IsReady(ctx context.Context) error {
	_, err := s.client.Search(ctx, s.index, []byte(`{"size":0,"query":{"match_all":{}}}`))
	if err != nil {
		return fmt.Errorf("opensearch index not reachable: %w", err)
	}
	return nil
}

// NewSearcher returns a new OpenSearch-backed account searcher.
func NewSearcher(ctx context.Context, config Config) (*Searcher, error) {
	if config.URL == "" {
		slog.ErrorContext(ctx, "opensearch URL is required")
		return nil, fmt.Errorf("opensearch URL is required")
	}
	if config.Index == "" {
		slog.ErrorContext(ctx, "opensearch index is required")
		return nil, fmt.Errorf("opensearch index is required")
	}

	opensearchClient, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: []string{config.URL},
			Transport: &http.Transport{
				MaxIdleConnsPerHost:   10,
				ResponseHeaderTimeout: time.Second,
				DialContext:           (&net.Dialer{Timeout: 3 * time.Second}).DialContext,
			},
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create OpenSearch client", "error", err)
		return nil, fmt.Errorf("failed to create OpenSearch client: %w", err)
	}

	return &Searcher{
		client: &searchClient{client: opensearchClient},
		index:  config.Index,
	}, nil
}
