// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package client is a typed REST client for the account search service.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/feedbackhq/account-search-service/pkg/api"
	"github.com/feedbackhq/account-search-service/pkg/httpclient"
)

// Config holds the configuration for the API client.
type Config struct {
	// BaseURL is the base URL of the account search service.
	BaseURL string

	// Timeout is the per-request timeout. Zero means 10s.
	Timeout time.Duration

	// MaxRetries is the number of retry attempts. Zero means 3.
	MaxRetries int

	// RetryDelay is the fixed spacing between attempts. Zero means 1s.
	RetryDelay time.Duration
}

// Client calls the account search service endpoints.
type Client struct {
	baseURL    string
	httpClient *httpclient.Client
}

// NewClient creates a new API client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("service base URL is required")
	}

	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = 1 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpclient.NewClient(httpclient.Config{
			Timeout:      config.Timeout,
			MaxRetries:   config.MaxRetries,
			RetryDelay:   config.RetryDelay,
			RetryBackoff: false,
		}),
	}, nil
}

// SearchAccounts resolves a free-text query into the endpoint's ordered
// account list. An empty query requests the default listing. The result
// is never nil on success.
func (c *Client) SearchAccounts(ctx context.Context, query string) ([]api.Account, error) {
	u, err := url.Parse(c.baseURL + "/api/accounts/search")
	if err != nil {
		return nil, fmt.Errorf("failed to parse service URL: %w", err)
	}

	if q := strings.TrimSpace(query); q != "" {
		values := u.Query()
		values.Set("q", q)
		u.RawQuery = values.Encode()
	}

	var envelope api.SearchAccountsResponse
	if err := c.get(ctx, u.String(), &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("account search was not successful")
	}

	if envelope.Accounts == nil {
		envelope.Accounts = []api.Account{}
	}
	return envelope.Accounts, nil
}

// OpportunitiesByAccount returns the open opportunities for one account,
// revenue descending.
func (c *Client) OpportunitiesByAccount(ctx context.Context, accountID string) ([]api.Opportunity, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("account identifier is required")
	}

	u, err := url.Parse(c.baseURL + "/api/opportunities/by-account")
	if err != nil {
		return nil, fmt.Errorf("failed to parse service URL: %w", err)
	}

	values := u.Query()
	values.Set("accountId", accountID)
	u.RawQuery = values.Encode()

	var envelope api.OpportunitiesResponse
	if err := c.get(ctx, u.String(), &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, fmt.Errorf("opportunity lookup was not successful")
	}

	if envelope.Opportunities == nil {
		envelope.Opportunities = []api.Opportunity{}
	}
	return envelope.Opportunities, nil
}

// get performs the request and decodes the success envelope into out.
// Error envelopes from the service are surfaced by message.
func (c *Client) get(ctx context.Context, url string, out any) error {
	resp, err := c.httpClient.Request(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		var retryableErr *httpclient.RetryableError
		if errors.As(err, &retryableErr) {
			var failure api.ErrorResponse
			if jsonErr := json.Unmarshal([]byte(retryableErr.Message), &failure); jsonErr == nil && failure.Message != "" {
				return fmt.Errorf("service error: %s", failure.Message)
			}
			return fmt.Errorf("service returned status %d", retryableErr.StatusCode)
		}
		return fmt.Errorf("request failed: %w", err)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
