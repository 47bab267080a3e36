// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package typeahead

import (
	"strings"
	"sync"

	"github.com/feedbackhq/account-search-service/pkg/api"
)

// SelectionPhase names the states of the displayed-selection machine.
type SelectionPhase int

const (
	// PhaseUnset means no account is selected or displayed.
	PhaseUnset SelectionPhase = iota
	// PhasePendingMatch means an identifier is selected but no loaded
	// option matches it yet, and nothing was displayed before.
	PhasePendingMatch
	// PhaseMatched means the displayed account matches the selected
	// identifier.
	PhaseMatched
	// PhasePreservedStale means an identifier is selected, no loaded
	// option matches it, and the previously displayed account is kept
	// on screen to avoid flicker.
	PhasePreservedStale
)

// Selection reconciles the externally selected account identifier with
// the currently loaded option list. It keeps the displayed account
// stable while options catch up with a freshly set identifier, and
// emits the full matched record so consumers get the denormalized
// fields without a second fetch.
type Selection struct {
	mu            sync.Mutex
	phase         SelectionPhase
	wantID        string
	displayed     *api.Account
	options       []api.Account
	lastEmittedID string
	onChange      func(id string, account api.Account)
}

// NewSelection creates a selection machine. onChange fires whenever a
// selected identifier resolves to a loaded account; it may be nil. The
// callback runs outside the machine's lock and may call back into it.
func NewSelection(onChange func(id string, account api.Account)) *Selection {
	return &Selection{onChange: onChange}
}

// SetSelected applies an identifier change. An empty identifier clears
// the selection; an identifier without a loaded match preserves whatever
// was already displayed rather than blanking the control.
func (s *Selection) SetSelected(id string) {
	s.mu.Lock()

	s.wantID = id

	if id == "" {
		s.phase = PhaseUnset
		s.displayed = nil
		s.lastEmittedID = ""
		s.mu.Unlock()
		return
	}

	if match := findAccount(s.options, id); match != nil {
		account := *match
		emit := s.adoptLocked(account)
		s.mu.Unlock()
		if emit {
			s.onChange(account.ID, account)
		}
		return
	}

	if s.displayed != nil {
		s.phase = PhasePreservedStale
	} else {
		s.phase = PhasePendingMatch
	}
	s.mu.Unlock()
}

// SetOptions applies a new option list. A pending or stale selection
// adopts its match as soon as one becomes available; a matched
// selection is not disturbed by option-list churn from further typing.
func (s *Selection) SetOptions(options []api.Account) {
	s.mu.Lock()

	s.options = options

	if s.phase != PhasePendingMatch && s.phase != PhasePreservedStale {
		s.mu.Unlock()
		return
	}

	if match := findAccount(options, s.wantID); match != nil {
		account := *match
		emit := s.adoptLocked(account)
		s.mu.Unlock()
		if emit {
			s.onChange(account.ID, account)
		}
		return
	}
	s.mu.Unlock()
}

// Displayed returns the account currently shown by the control, which
// may be stale while options for a fresh identifier load.
func (s *Selection) Displayed() (api.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.displayed == nil {
		return api.Account{}, false
	}
	return *s.displayed, true
}

// Phase returns the current machine state.
func (s *Selection) Phase() SelectionPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// adoptLocked transitions to Matched and reports whether the caller
// should emit, at most once per identifier. Callers hold s.mu and run
// the callback only after releasing it, so onChange may re-enter the
// machine.
func (s *Selection) adoptLocked(account api.Account) bool {
	s.phase = PhaseMatched
	s.displayed = &account

	if s.onChange != nil && s.lastEmittedID != account.ID {
		s.lastEmittedID = account.ID
		return true
	}
	return false
}

func findAccount(options []api.Account, id string) *api.Account {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}

// FilterOptions applies the control's defensive case-insensitive
// substring check. True filtering is the endpoint's responsibility; this
// only hides rows an out-of-date cache entry may have left behind.
func FilterOptions(options []api.Account, input string) []api.Account {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return options
	}

	filtered := make([]api.Account, 0, len(options))
	for _, option := range options {
		if strings.Contains(strings.ToLower(option.Name), needle) {
			filtered = append(filtered, option)
		}
	}
	return filtered
}

// EmptyState classifies what the control should render when it has no
// options to show.
type EmptyState int

const (
	// EmptyPrompt is the generic "start typing" hint.
	EmptyPrompt EmptyState = iota
	// EmptySearching means a lookup for the current input has not
	// completed yet.
	EmptySearching
	// EmptyNoMatches means the lookup for the current input completed
	// with zero results.
	EmptyNoMatches
)

// ClassifyEmpty distinguishes the three no-results states by comparing
// the raw input against the session's last completed query.
func ClassifyEmpty(state SessionState) EmptyState {
	if strings.TrimSpace(state.Term) == "" {
		return EmptyPrompt
	}
	if state.LastSearchedTerm == state.Term && !state.Loading {
		return EmptyNoMatches
	}
	return EmptySearching
}
