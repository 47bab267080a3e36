// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"time"
)

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the HTTP client timeout for requests.
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for failed requests.
	MaxRetries int

	// RetryDelay is the delay between retry attempts.
	RetryDelay time.Duration

	// RetryBackoff enables exponential growth of RetryDelay. When false
	// the delay between attempts is fixed.
	RetryBackoff bool
}

// DefaultConfig returns the policy used against the service endpoints:
// up to three retries spaced one second apart, no backoff.
func DefaultConfig() Config {
	return Config{
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryDelay:   1 * time.Second,
		RetryBackoff: false,
	}
}
