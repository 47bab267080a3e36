// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhq/account-search-service/internal/infrastructure/mock"
	"github.com/feedbackhq/account-search-service/internal/service"
	"github.com/feedbackhq/account-search-service/pkg/api"
)

func TestOpportunitiesByAccount(t *testing.T) {
	searcher := mock.NewMockOpportunitySearcher()
	h := NewOpportunitiesHandler(service.NewOpportunitySearch(searcher))

	req := httptest.NewRequest(http.MethodGet, "/api/opportunities/by-account?accountId=001GLOBEX88KQZ", nil)
	rec := httptest.NewRecorder()

	h.ByAccount(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope api.OpportunitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	require.Len(t, envelope.Opportunities, 2)
	// Revenue descending.
	assert.Equal(t, "006GLBXNEW77", envelope.Opportunities[0].ID)
	assert.Equal(t, "006GLBXPOC12", envelope.Opportunities[1].ID)
}

func TestOpportunitiesByAccountMissingID(t *testing.T) {
	searcher := mock.NewMockOpportunitySearcher()
	h := NewOpportunitiesHandler(service.NewOpportunitySearch(searcher))

	req := httptest.NewRequest(http.MethodGet, "/api/opportunities/by-account", nil)
	rec := httptest.NewRecorder()

	h.ByAccount(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.False(t, envelope.Success)
	assert.Equal(t, "failed to fetch opportunities", envelope.Message)
	assert.Contains(t, envelope.Error, "accountId is required")
}

func TestOpportunitiesByAccountUnknownAccount(t *testing.T) {
	searcher := mock.NewMockOpportunitySearcher()
	h := NewOpportunitiesHandler(service.NewOpportunitySearch(searcher))

	req := httptest.NewRequest(http.MethodGet, "/api/opportunities/by-account?accountId=001NOSUCH", nil)
	rec := httptest.NewRecorder()

	h.ByAccount(rec, req)

	// An account without opportunities is a success with an empty array,
	// not an error.
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope api.OpportunitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.NotNil(t, envelope.Opportunities)
	assert.Empty(t, envelope.Opportunities)
}

func TestOpportunitiesCloseDateWireFormat(t *testing.T) {
	searcher := mock.NewMockOpportunitySearcher()
	h := NewOpportunitiesHandler(service.NewOpportunitySearch(searcher))

	req := httptest.NewRequest(http.MethodGet, "/api/opportunities/by-account?accountId=001GLOBEX88KQZ", nil)
	rec := httptest.NewRecorder()

	h.ByAccount(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Close dates cross the wire as bare YYYY-MM-DD strings.
	var raw struct {
		Opportunities []map[string]json.RawMessage `json:"opportunities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.NotEmpty(t, raw.Opportunities)

	var closeOn string
	require.NoError(t, json.Unmarshal(raw.Opportunities[0]["CLOSE_ON"], &closeOn))
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, closeOn)
}
