// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/feedbackhq/account-search-service/pkg/constants"
	"github.com/feedbackhq/account-search-service/pkg/log"
)

// RequestIDMiddleware creates a middleware that attaches a request ID to
// the context, the response headers and every log record of the request.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Honor an ID passed by an upstream proxy, mint one otherwise.
			requestID := r.Header.Get(string(constants.RequestIDHeader))
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(string(constants.RequestIDHeader), requestID)

			ctx := context.WithValue(r.Context(), constants.RequestIDHeader, requestID)
			ctx = log.AppendCtx(ctx, slog.String(string(constants.RequestIDHeader), requestID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
