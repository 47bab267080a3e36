// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/feedbackhq/account-search-service/internal/domain/port"
	"github.com/feedbackhq/account-search-service/internal/infrastructure/mock"
	"github.com/feedbackhq/account-search-service/internal/infrastructure/opensearch"
	"github.com/feedbackhq/account-search-service/internal/infrastructure/warehouse"
)

// AccountSearcherImpl injects the account searcher implementation.
func AccountSearcherImpl(ctx context.Context) port.AccountSearcher {
	searchSource := os.Getenv("SEARCH_SOURCE")
	if searchSource == "" {
		searchSource = "warehouse"
	}

	switch searchSource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock account searcher")
		return mock.NewMockAccountSearcher()

	case "warehouse":
		slog.InfoContext(ctx, "initializing warehouse account searcher")
		searcher, err := warehouse.NewSearcher(ctx, warehouseConfig())
		if err != nil {
			log.Fatalf("failed to initialize warehouse searcher: %v", err)
		}
		return searcher

	case "opensearch":
		opensearchURL := os.Getenv("OPENSEARCH_URL")
		if opensearchURL == "" {
			opensearchURL = "http://localhost:9200"
		}
		opensearchIndex := os.Getenv("OPENSEARCH_INDEX")
		if opensearchIndex == "" {
			opensearchIndex = "accounts"
		}

		slog.InfoContext(ctx, "initializing opensearch account searcher",
			"url", opensearchURL,
			"index", opensearchIndex,
		)

		searcher, err := opensearch.NewSearcher(ctx, opensearch.Config{
			URL:   opensearchURL,
			Index: opensearchIndex,
		})
		if err != nil {
			log.Fatalf("failed to initialize OpenSearch searcher: %v", err)
		}
		return searcher

	default:
		log.Fatalf("unsupported search implementation: %s", searchSource)
		return nil
	}
}

// OpportunitySearcherImpl injects the opportunity searcher implementation.
func OpportunitySearcherImpl(ctx context.Context) port.OpportunitySearcher {
	opportunitySource := os.Getenv("OPPORTUNITY_SOURCE")
	if opportunitySource == "" {
		opportunitySource = "warehouse"
	}

	switch opportunitySource {
	case "mock":
		slog.InfoContext(ctx, "initializing mock opportunity searcher")
		return mock.NewMockOpportunitySearcher()

	case "warehouse":
		slog.InfoContext(ctx, "initializing warehouse opportunity searcher")
		searcher, err := warehouse.NewSearcher(ctx, warehouseConfig())
		if err != nil {
			log.Fatalf("failed to initialize warehouse searcher: %v", err)
		}
		return searcher

	default:
		log.Fatalf("unsupported opportunity search implementation: %s", opportunitySource)
		return nil
	}
}

// warehouseConfig assembles the warehouse gateway configuration from the
// environment.
func warehouseConfig() warehouse.Config {
	maxRetries := 3
	if v := os.Getenv("WAREHOUSE_MAX_RETRIES"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid warehouse max retries value %s: %v", v, err)
		}
		maxRetries = parsed
	}

	queriesPerSecond := 0.0
	if v := os.Getenv("WAREHOUSE_QPS"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("invalid warehouse QPS value %s: %v", v, err)
		}
		queriesPerSecond = parsed
	}

	config, err := warehouse.NewConfig(
		os.Getenv("WAREHOUSE_GATEWAY_URL"),
		os.Getenv("WAREHOUSE_CREDENTIAL"),
		os.Getenv("WAREHOUSE_TIMEOUT"),
		maxRetries,
		os.Getenv("WAREHOUSE_RETRY_DELAY"),
		queriesPerSecond,
	)
	if err != nil {
		log.Fatalf("failed to create warehouse configuration: %v", err)
	}
	return config
}
