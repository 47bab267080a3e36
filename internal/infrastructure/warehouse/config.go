// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package warehouse

import (
	"fmt"
	"time"
)

// Config holds the configuration for the warehouse gateway client.
type Config struct {
	// BaseURL is the base URL of the warehouse query gateway.
	BaseURL string

	// APIKey authenticates against the gateway.
	APIKey string

	// Timeout is the HTTP client timeout for gateway requests.
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for failed requests.
	MaxRetries int

	// RetryDelay is the delay between retry attempts.
	RetryDelay time.Duration

	// QueriesPerSecond bounds the rate of gateway calls. Warehouse
	// queries are metered per execution.
	QueriesPerSecond float64
}

// NewConfig creates a warehouse configuration from the provided values,
// applying defaults for everything optional.
func NewConfig(baseURL, apiKey, timeout string, maxRetries int, retryDelay string, queriesPerSecond float64) (Config, error) {
	if baseURL == "" {
		return Config{}, fmt.Errorf("warehouse gateway URL is required")
	}
	if apiKey == "" {
		return Config{}, fmt.Errorf("warehouse API key is required")
	}

	if timeout == "" {
		timeout = "10s"
	}
	timeoutDuration, err := time.ParseDuration(timeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timeout duration: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}

	if retryDelay == "" {
		retryDelay = "1s"
	}
	retryDelayDuration, err := time.ParseDuration(retryDelay)
	if err != nil {
		return Config{}, fmt.Errorf("invalid retry delay duration: %w", err)
	}

	if queriesPerSecond <= 0 {
		queriesPerSecond = 5
	}

	return Config{
		BaseURL:          baseURL,
		APIKey:           apiKey,
		Timeout:          timeoutDuration,
		MaxRetries:       maxRetries,
		RetryDelay:       retryDelayDuration,
		QueriesPerSecond: queriesPerSecond,
	}, nil
}
