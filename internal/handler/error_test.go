// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feedbackhq/account-search-service/pkg/errors"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "validation maps to 400",
			err:            errors.NewValidation("accountId is required"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found maps to 404",
			err:            errors.NewNotFound("no rows matched"),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service unavailable maps to 503",
			err:            errors.NewServiceUnavailable("warehouse gateway unavailable"),
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "unexpected maps to 500",
			err:            errors.NewUnexpected("warehouse query failed"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "untyped errors map to 500",
			err:            fmt.Errorf("something else"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, statusForError(tt.err))
		})
	}
}
