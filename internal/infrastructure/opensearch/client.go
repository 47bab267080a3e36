// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package opensearch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

type searchClient struct {
	client *opensearchapi.Client
}

func (c *searchClient) Search(ctx context.Context, index string, query []byte) (*SearchResponse, error) {
	slog.DebugContext(ctx, "executing opensearch search",
		"index", index,
		"query", string(query),
	)

	searchRequest := opensearchapi.SearchReq{
		Indices: []string{index},
		Body:    bytes.NewReader(query),
		Params: opensearchapi.SearchParams{
			Source: true,
		},
	}

	searchResponse, err := c.client.Search(ctx, &searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	if searchResponse.Errors {
		return nil, fmt.Errorf("opensearch search returned errors")
	}

	result := &SearchResponse{
		Hits: Hits{
			Total: Total{
				Value: searchResponse.Hits.Total.Value,
			},
			Hits: make([]Hit, len(searchResponse.Hits.Hits)),
		},
	}
	for i, hit := range searchResponse.Hits.Hits {
		result.Hits.Hits[i] = Hit{
			ID:     hit.ID,
			Source: hit.Source,
		}
	}

	return result, nil
}
