// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package typeahead

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhq/account-search-service/pkg/api"
)

// fakeOpportunityFetcher serves canned results per account and counts calls.
type fakeOpportunityFetcher struct {
	mu      sync.Mutex
	calls   map[string]int
	results map[string][]api.Opportunity
	errs    map[string]error
}

func newFakeOpportunityFetcher() *fakeOpportunityFetcher {
	return &fakeOpportunityFetcher{
		calls:   make(map[string]int),
		results: make(map[string][]api.Opportunity),
		errs:    make(map[string]error),
	}
}

func (f *fakeOpportunityFetcher) OpportunitiesByAccount(_ context.Context, accountID string) ([]api.Opportunity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[accountID]++
	if err := f.errs[accountID]; err != nil {
		return nil, err
	}
	return f.results[accountID], nil
}

func (f *fakeOpportunityFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func opportunityClosing(id string, arr float64, closeOn time.Time) api.Opportunity {
	return api.Opportunity{
		ID:                 id,
		Name:               id,
		NewAndExpansionARR: arr,
		Stage:              "Negotiation",
		CloseOn:            api.NewDate(closeOn),
	}
}

func waitForPickerSettled(t *testing.T, picker *Picker) PickerState {
	t.Helper()
	var state PickerState
	require.Eventually(t, func() bool {
		state = picker.Snapshot()
		return !state.Loading
	}, time.Second, time.Millisecond)
	return state
}

func TestDefaultSelection(t *testing.T) {
	now := time.Date(2025, 7, 15, 16, 45, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	tests := []struct {
		name          string
		opportunities []api.Opportunity
		expectedID    string
		expectedOK    bool
	}{
		{
			name:       "empty input selects nothing",
			expectedOK: false,
		},
		{
			name: "earliest close date today or later wins regardless of revenue",
			opportunities: []api.Opportunity{
				opportunityClosing("past", 50000, day(-5)),
				opportunityClosing("today", 10000, day(0)),
				opportunityClosing("soon", 80000, day(3)),
				opportunityClosing("later", 20000, day(10)),
			},
			expectedID: "today",
			expectedOK: true,
		},
		{
			name: "close date today still qualifies",
			opportunities: []api.Opportunity{
				opportunityClosing("today", 100, day(0)),
			},
			expectedID: "today",
			expectedOK: true,
		},
		{
			name: "all in the past falls back to the first row",
			opportunities: []api.Opportunity{
				opportunityClosing("biggest", 90000, day(-10)),
				opportunityClosing("smaller", 1000, day(-2)),
			},
			expectedID: "biggest",
			expectedOK: true,
		},
		{
			name: "stale early close skipped for a later open one",
			opportunities: []api.Opportunity{
				opportunityClosing("expired", 48000, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
				opportunityClosing("open", 12000, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
			},
			expectedID: "open",
			expectedOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chosen, ok := DefaultSelection(tt.opportunities, now)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedID, chosen.ID)
			}
		})
	}
}

func TestDefaultSelectionDateBoundary(t *testing.T) {
	// 23:59 UTC: an opportunity closing "today" must still be selectable,
	// the comparison happens on calendar dates, not instants.
	now := time.Date(2025, 7, 15, 23, 59, 0, 0, time.UTC)
	opportunities := []api.Opportunity{
		opportunityClosing("today", 100, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)),
	}

	chosen, ok := DefaultSelection(opportunities, now)
	require.True(t, ok)
	assert.Equal(t, "today", chosen.ID)
}

func TestPickerFetchesAndDefaults(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	fetcher := newFakeOpportunityFetcher()
	fetcher.results["001ACME"] = []api.Opportunity{
		opportunityClosing("big-later", 150000, now.AddDate(0, 4, 0)),
		opportunityClosing("small-soon", 30000, now.AddDate(0, 0, 10)),
	}

	picker := NewPicker(fetcher)
	picker.now = func() time.Time { return now }
	defer picker.Close()

	picker.SetAccount("001ACME")
	state := waitForPickerSettled(t, picker)

	require.Len(t, state.Opportunities, 2)
	// Default selection follows closing date, not revenue.
	assert.Equal(t, "small-soon", state.SelectedID)
	assert.Empty(t, state.Err)
}

func TestPickerClearAccount(t *testing.T) {
	fetcher := newFakeOpportunityFetcher()
	fetcher.results["001ACME"] = []api.Opportunity{
		opportunityClosing("opp", 100, time.Now().AddDate(0, 1, 0)),
	}

	picker := NewPicker(fetcher)
	defer picker.Close()

	picker.SetAccount("001ACME")
	waitForPickerSettled(t, picker)
	calls := fetcher.totalCalls()

	picker.SetAccount("")
	state := picker.Snapshot()

	assert.Empty(t, state.SelectedID)
	assert.NotNil(t, state.Opportunities)
	assert.Empty(t, state.Opportunities)
	assert.False(t, state.Loading)
	// Clearing never hits the network.
	assert.Equal(t, calls, fetcher.totalCalls())
}

func TestPickerNoOpportunities(t *testing.T) {
	fetcher := newFakeOpportunityFetcher()

	picker := NewPicker(fetcher)
	defer picker.Close()

	picker.SetAccount("001EMPTY")
	state := waitForPickerSettled(t, picker)

	assert.NotNil(t, state.Opportunities)
	assert.Empty(t, state.Opportunities)
	assert.Empty(t, state.SelectedID)
}

func TestPickerErrorKeepsList(t *testing.T) {
	fetcher := newFakeOpportunityFetcher()
	fetcher.results["001GOOD"] = []api.Opportunity{
		opportunityClosing("opp", 100, time.Now().AddDate(0, 1, 0)),
	}
	fetcher.errs["001BAD"] = fmt.Errorf("gateway timeout")

	picker := NewPicker(fetcher)
	defer picker.Close()

	picker.SetAccount("001GOOD")
	waitForPickerSettled(t, picker)

	picker.SetAccount("001BAD")
	var state PickerState
	require.Eventually(t, func() bool {
		state = picker.Snapshot()
		return state.Err != "" && !state.Loading
	}, time.Second, time.Millisecond)

	assert.Contains(t, state.Err, "gateway timeout")
	// The failed fetch leaves the previous list in place.
	require.Len(t, state.Opportunities, 1)
}

func TestPickerSelectOverride(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	fetcher := newFakeOpportunityFetcher()
	fetcher.results["001ACME"] = []api.Opportunity{
		opportunityClosing("defaulted", 100, now.AddDate(0, 0, 5)),
		opportunityClosing("manual", 200, now.AddDate(0, 0, 30)),
	}

	picker := NewPicker(fetcher)
	picker.now = func() time.Time { return now }
	defer picker.Close()

	picker.SetAccount("001ACME")
	state := waitForPickerSettled(t, picker)
	require.Equal(t, "defaulted", state.SelectedID)

	picker.Select("manual")
	assert.Equal(t, "manual", picker.Snapshot().SelectedID)
}

func TestPickerStaleCompletionIgnored(t *testing.T) {
	fetcher := newFakeOpportunityFetcher()
	fetcher.results["001FIRST"] = []api.Opportunity{
		opportunityClosing("first-opp", 100, time.Now().AddDate(0, 1, 0)),
	}
	fetcher.results["001SECOND"] = []api.Opportunity{
		opportunityClosing("second-opp", 200, time.Now().AddDate(0, 1, 0)),
	}

	picker := NewPicker(fetcher)
	defer picker.Close()

	// Switch accounts back to back; only the latest account's result may
	// land, no matter which request finishes first.
	picker.SetAccount("001FIRST")
	picker.SetAccount("001SECOND")

	var state PickerState
	require.Eventually(t, func() bool {
		state = picker.Snapshot()
		return !state.Loading && len(state.Opportunities) > 0
	}, time.Second, time.Millisecond)

	assert.Equal(t, "second-opp", state.Opportunities[0].ID)
	assert.Equal(t, "second-opp", state.SelectedID)
}
