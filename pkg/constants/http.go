// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package constants

type requestIDHeaderType string

// RequestIDHeader is the header name for the request ID.
const RequestIDHeader requestIDHeaderType = "X-REQUEST-ID"
