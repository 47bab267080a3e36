// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package warehouse implements the account and opportunity search ports
// against the analytics warehouse query gateway, a REST facade over the
// warehouse's account and opportunity exports.
package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/feedbackhq/account-search-service/pkg/errors"
	"github.com/feedbackhq/account-search-service/pkg/httpclient"
)

// Client is a warehouse gateway API client.
type Client struct {
	config     Config
	httpClient *httpclient.Client
	limiter    *rate.Limiter
}

// NewClient creates a new warehouse gateway client.
func NewClient(config Config) *Client {
	httpConfig := httpclient.Config{
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RetryDelay:   config.RetryDelay,
		RetryBackoff: false,
	}

	return &Client{
		config:     config,
		httpClient: httpclient.NewClient(httpConfig),
		limiter:    rate.NewLimiter(rate.Limit(config.QueriesPerSecond), 1),
	}
}

// SearchAccounts queries the gateway's account export. A nil name
// requests the default recently-updated listing.
func (c *Client) SearchAccounts(ctx context.Context, name *string, updatedAfter time.Time, limit int) (*accountsResponse, error) {
	u, err := url.Parse(fmt.Sprintf("%s/v1/accounts/search", c.config.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse gateway URL: %w", err)
	}

	q := u.Query()
	if name != nil {
		q.Set("name", *name)
	}
	q.Set("updated_after", updatedAfter.UTC().Format(time.RFC3339))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var response accountsResponse
	if err := c.makeRequest(ctx, u.String(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// OpportunitiesByAccount queries the gateway's opportunity export scoped
// to one account.
func (c *Client) OpportunitiesByAccount(ctx context.Context, accountID string, closingOnOrAfter time.Time, limit int) (*opportunitiesResponse, error) {
	u, err := url.Parse(fmt.Sprintf("%s/v1/opportunities", c.config.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse gateway URL: %w", err)
	}

	q := u.Query()
	q.Set("account_id", accountID)
	q.Set("closing_on_or_after", closingOnOrAfter.UTC().Format("2006-01-02"))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	var response opportunitiesResponse
	if err := c.makeRequest(ctx, u.String(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// makeRequest performs a rate-limited GET against the gateway and decodes
// the JSON response into out.
func (c *Client) makeRequest(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.NewUnexpected("rate limiter wait aborted", err)
	}

	headers := map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", c.config.APIKey),
	}

	resp, err := c.httpClient.Request(ctx, http.MethodGet, url, nil, headers)
	if err != nil {
		if httpErr, ok := err.(*httpclient.RetryableError); ok {
			switch httpErr.StatusCode {
			case http.StatusNotFound:
				return errors.NewNotFound("no rows matched the query")
			case http.StatusBadRequest, http.StatusUnprocessableEntity:
				// A rejected query is a bug in this service, not caller
				// input; it must not report as a client error upstream.
				return errors.NewUnexpected("gateway rejected the query", err)
			case http.StatusServiceUnavailable, http.StatusBadGateway:
				return errors.NewServiceUnavailable("warehouse gateway unavailable", err)
			default:
				return errors.NewUnexpected("warehouse query failed", err)
			}
		}
		return errors.NewUnexpected("warehouse request failed", err)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return errors.NewUnexpected("failed to decode gateway response", err)
	}

	return nil
}

// IsReady checks if the warehouse gateway is reachable.
func (c *Client) IsReady(ctx context.Context) error {
	resp, err := c.httpClient.Request(ctx, http.MethodGet, fmt.Sprintf("%s/healthz", c.config.BaseURL), nil, nil)
	if err != nil {
		return errors.NewServiceUnavailable("failed to reach warehouse gateway", err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewServiceUnavailable("warehouse gateway is not healthy", fmt.Errorf("status code: %d", resp.StatusCode))
	}

	return nil
}
