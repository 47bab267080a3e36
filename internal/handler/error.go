// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/feedbackhq/account-search-service/pkg/api"
	"github.com/feedbackhq/account-search-service/pkg/errors"
)

// statusForError maps the application error taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch err.(type) {
	case errors.Validation:
		return http.StatusBadRequest
	case errors.NotFound:
		return http.StatusNotFound
	case errors.ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs the failure and writes the error envelope. Internals
// stay behind a generic message; the error string is the only detail
// that crosses the boundary.
func writeError(ctx context.Context, w http.ResponseWriter, message string, err error) {
	slog.ErrorContext(ctx, "request failed",
		"message", message,
		"error", err,
	)

	writeJSON(ctx, w, statusForError(err), api.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

// writeJSON writes v with the given status. Encoding failures at this
// point can only be logged, the status line is already committed.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
