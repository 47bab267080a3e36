// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package handler

import (
	"context"
	"net/http"
)

// readiness is the slice of the service layer the probes need.
type readiness interface {
	IsReady(ctx context.Context) error
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Readyz reports readiness of every wired backend.
func Readyz(checks ...readiness) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for _, check := range checks {
			if err := check.IsReady(ctx); err != nil {
				writeError(ctx, w, "backend not ready", err)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	}
}
