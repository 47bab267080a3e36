// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feedbackhq/account-search-service/internal/handler"
	"github.com/feedbackhq/account-search-service/internal/middleware"
	"github.com/feedbackhq/account-search-service/internal/service"
)

// newRouter wires the HTTP surface of the service.
func newRouter(accountService service.AccountSearcher, opportunityService service.OpportunitySearcher) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestIDMiddleware())
	mux.Use(middleware.MetricsMiddleware())

	accounts := handler.NewAccountsHandler(accountService)
	opportunities := handler.NewOpportunitiesHandler(opportunityService)

	mux.Get("/api/accounts/search", accounts.Search)
	mux.Get("/api/opportunities/by-account", opportunities.ByAccount)

	mux.Get("/healthz", handler.Healthz)
	mux.Get("/readyz", handler.Readyz(accountService, opportunityService))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// handleHTTPServer starts the HTTP server on addr and shuts it down when
// the context is canceled.
func handleHTTPServer(ctx context.Context, addr string, accountService service.AccountSearcher, opportunityService service.OpportunitySearcher, wg *sync.WaitGroup, errc chan error) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(accountService, opportunityService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		go func() {
			slog.InfoContext(ctx, "HTTP server listening", "addr", addr)
			errc <- srv.ListenAndServe()
		}()

		<-ctx.Done()
		slog.InfoContext(ctx, "shutting down HTTP server", "addr", addr)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownSeconds*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "failed to shutdown HTTP server", "error", err)
		}
	}()
}
