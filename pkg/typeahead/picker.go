// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package typeahead

import (
	"context"
	"sync"
	"time"

	"github.com/feedbackhq/account-search-service/pkg/api"
)

// PickerState is a point-in-time snapshot of the opportunity picker.
type PickerState struct {
	// Opportunities for the current account, revenue descending. Never nil.
	Opportunities []api.Opportunity
	// SelectedID is the defaulted or caller-overridden opportunity.
	// Empty when the account has no opportunities.
	SelectedID string
	// Loading reports a fetch in progress.
	Loading bool
	// Err is the terminal failure of the latest fetch, empty otherwise.
	// The opportunity list is left unchanged on failure.
	Err string
}

// Picker fetches the open opportunities of a selected account and
// auto-selects the most relevant one by closing date.
type Picker struct {
	fetcher OpportunityFetcher
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	accountID     string
	opportunities []api.Opportunity
	selectedID    string
	loading       bool
	errMsg        string
	updates       chan struct{}
	closed        bool
}

// NewPicker creates an opportunity picker. Close must be called when the
// form interaction ends.
func NewPicker(fetcher OpportunityFetcher) *Picker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Picker{
		fetcher:       fetcher,
		now:           time.Now,
		ctx:           ctx,
		cancel:        cancel,
		opportunities: []api.Opportunity{},
		updates:       make(chan struct{}, 1),
	}
}

// SetAccount switches the picker to a new account. An empty identifier
// resets list and selection without a fetch; any other value re-fetches
// and re-runs default selection from scratch, discarding prior state.
func (p *Picker) SetAccount(accountID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.accountID = accountID
	p.errMsg = ""

	if accountID == "" {
		p.opportunities = []api.Opportunity{}
		p.selectedID = ""
		p.loading = false
		p.notifyLocked()
		return
	}

	p.loading = true
	p.notifyLocked()

	go p.lookup(accountID)
}

// Select overrides the defaulted opportunity.
func (p *Picker) Select(opportunityID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.selectedID = opportunityID
	p.notifyLocked()
}

// Snapshot returns the current picker state.
func (p *Picker) Snapshot() PickerState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PickerState{
		Opportunities: p.opportunities,
		SelectedID:    p.selectedID,
		Loading:       p.loading,
		Err:           p.errMsg,
	}
}

// Updates signals state changes; callers re-read Snapshot after each
// receive.
func (p *Picker) Updates() <-chan struct{} {
	return p.updates
}

// Close abandons any in-flight fetch.
func (p *Picker) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	p.cancel()
}

// lookup fetches one account's opportunities and applies the completion
// unless the account changed while the request was in flight.
func (p *Picker) lookup(accountID string) {
	opportunities, err := p.fetcher.OpportunitiesByAccount(p.ctx, accountID)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.accountID != accountID {
		return
	}

	if err != nil {
		p.loading = false
		p.errMsg = err.Error()
		p.notifyLocked()
		return
	}

	if opportunities == nil {
		opportunities = []api.Opportunity{}
	}
	p.opportunities = opportunities
	p.selectedID = ""
	if chosen, ok := DefaultSelection(opportunities, p.now()); ok {
		p.selectedID = chosen.ID
	}
	p.loading = false
	p.errMsg = ""
	p.notifyLocked()
}

// notifyLocked signals Updates without blocking. Callers hold p.mu.
func (p *Picker) notifyLocked() {
	select {
	case p.updates <- struct{}{}:
	default:
	}
}

// DefaultSelection picks the soonest-closing opportunity whose close
// date is today or later. When none qualifies it falls back to the first
// element of the (revenue-ordered) input; an empty input selects nothing.
func DefaultSelection(opportunities []api.Opportunity, now time.Time) (api.Opportunity, bool) {
	if len(opportunities) == 0 {
		return api.Opportunity{}, false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var chosen api.Opportunity
	found := false
	for _, opportunity := range opportunities {
		if opportunity.CloseOn.Time.Before(today) {
			continue
		}
		if !found || opportunity.CloseOn.Time.Before(chosen.CloseOn.Time) {
			chosen = opportunity
			found = true
		}
	}

	if !found {
		return opportunities[0], true
	}
	return chosen, true
}
