// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package constants

const (
	// MaxSearchResults caps the rows returned by both search endpoints.
	MaxSearchResults = 20
)
