// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package errors

import "errors"

// Unexpected indicates a failure the service cannot attribute to the caller,
// such as a warehouse lookup that threw.
type Unexpected struct {
	base
}

// Error returns the error message for Unexpected.
func (u Unexpected) Error() string {
	return u.error()
}

// NewUnexpected creates a new Unexpected error with the provided message.
func NewUnexpected(message string, err ...error) Unexpected {
	return Unexpected{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}

// ServiceUnavailable indicates a backend that is temporarily unreachable.
type ServiceUnavailable struct {
	base
}

// Error returns the error message for ServiceUnavailable.
func (s ServiceUnavailable) Error() string {
	return s.error()
}

// NewServiceUnavailable creates a new ServiceUnavailable error with the provided message.
func NewServiceUnavailable(message string, err ...error) ServiceUnavailable {
	return ServiceUnavailable{
		base: base{
			message: message,
			err:     errors.Join(err...),
		},
	}
}
