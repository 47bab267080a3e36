// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package errors defines the typed application errors shared by every
// layer of the service. The HTTP layer maps each type to a status code.
package errors

import "fmt"

// base holds the fields common to every error type in this package.
type base struct {
	message string
	err     error
}

// error renders the message, appending the wrapped cause when present.
func (b base) error() string {
	if b.err == nil {
		return b.message
	}
	return fmt.Sprintf("%s: %v", b.message, b.err)
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (b base) Unwrap() error {
	return b.err
}
