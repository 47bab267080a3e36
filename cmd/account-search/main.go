// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/feedbackhq/account-search-service/internal/service"
	logging "github.com/feedbackhq/account-search-service/pkg/log"
)

const (
	defaultPort = "8080"
	// gracefulShutdownSeconds should be lower than the pod's
	// terminationGracePeriodSeconds.
	gracefulShutdownSeconds = 25
)

func init() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()
	logging.InitStructuredLogConfig()
}

func main() {
	var (
		port = flag.String("p", defaultPort, "listen port")
		bind = flag.String("bind", "*", "interface to bind on")
	)
	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	ctx := context.Background()
	slog.InfoContext(ctx, "starting account search service",
		"bind", *bind,
		"http-port", *port,
		"graceful-shutdown-seconds", gracefulShutdownSeconds,
	)

	// Initialize the search backends based on configuration.
	accountSearcher := AccountSearcherImpl(ctx)
	opportunitySearcher := OpportunitySearcherImpl(ctx)

	accountService := service.NewAccountSearch(accountSearcher)
	opportunityService := service.NewOpportunitySearch(opportunitySearcher)

	// Channel used by both the signal handler and server goroutines to
	// notify the main goroutine when to stop.
	errc := make(chan error)

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("%s", <-c)
	}()

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(ctx)

	addr := ":" + *port
	if *bind != "*" {
		addr = *bind + ":" + *port
	}

	handleHTTPServer(ctx, addr, accountService, opportunityService, &wg, errc)

	slog.InfoContext(ctx, "received shutdown signal, stopping server",
		"reason", <-errc,
	)

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(gracefulShutdownSeconds * time.Second):
		slog.WarnContext(ctx, "graceful shutdown window elapsed, exiting")
	}

	slog.InfoContext(ctx, "exited")
}
