// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

package typeahead

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/feedbackhq/account-search-service/pkg/api"
	"github.com/feedbackhq/account-search-service/pkg/cache"
)

const (
	// DefaultDebounce is the trailing-edge debounce interval: only an
	// uninterrupted full interval promotes the raw term to the network.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultCacheTTL is how long a completed search result is reused
	// for identical keys without refetching.
	DefaultCacheTTL = 5 * time.Minute
)

// SessionConfig holds the configuration for a search session.
type SessionConfig struct {
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// Cache is an optional shared result cache. When nil the session
	// owns a private cache with DefaultCacheTTL.
	Cache *cache.Cache[[]api.Account]
}

// SessionState is a point-in-time snapshot of the search session.
type SessionState struct {
	// Term is the raw input, updated synchronously on every SetTerm.
	Term string
	// LastSearchedTerm is the most recently completed query. It lags the
	// raw term while a lookup is debouncing or in flight, which lets the
	// caller tell stale results from fresh ones.
	LastSearchedTerm string
	// Accounts is the result set for the latest debounced term. Never nil.
	Accounts []api.Account
	// Loading reports a promotion or lookup in progress.
	Loading bool
	// Err is the terminal failure of the latest lookup, empty otherwise.
	// The previous result set is retained on failure.
	Err string
}

// Session converts a stream of input events into a bounded rate of
// lookups, tracking stale-vs-fresh result state for its caller.
type Session struct {
	fetcher  AccountFetcher
	debounce time.Duration
	cache    *cache.Cache[[]api.Account]

	ctx    context.Context
	cancel context.CancelFunc

	mu               sync.Mutex
	timer            *time.Timer
	term             string
	debouncedTerm    string
	lastSearchedTerm string
	accounts         []api.Account
	loading          bool
	errMsg           string
	inflight         map[string]bool
	updates          chan struct{}
	closed           bool
}

// NewSession creates a search session. Close must be called when the
// form interaction ends.
func NewSession(fetcher AccountFetcher, config SessionConfig) *Session {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	resultCache := config.Cache
	if resultCache == nil {
		resultCache = cache.New[[]api.Account](DefaultCacheTTL)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		fetcher:  fetcher,
		debounce: config.Debounce,
		cache:    resultCache,
		ctx:      ctx,
		cancel:   cancel,
		accounts: []api.Account{},
		inflight: make(map[string]bool),
		updates:  make(chan struct{}, 1),
	}
}

// SetTerm records the raw input synchronously and re-arms the debounce
// timer. Each call interrupts any pending promotion.
func (s *Session) SetTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.term = term
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.promote(term)
	})

	s.notifyLocked()
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionState{
		Term:             s.term,
		LastSearchedTerm: s.lastSearchedTerm,
		Accounts:         s.accounts,
		Loading:          s.loading,
		Err:              s.errMsg,
	}
}

// Updates signals state changes. The channel carries no data; callers
// re-read Snapshot after each receive.
func (s *Session) Updates() <-chan struct{} {
	return s.updates
}

// Close stops the debounce timer and abandons any in-flight lookups.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.cancel()
}

// promote runs when the debounce interval elapses without interruption.
// It serves the key from cache when fresh, otherwise starts a lookup.
func (s *Session) promote(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A keystroke that raced the firing timer wins: its own timer is
	// already armed for the newer value.
	if s.closed || s.term != term {
		return
	}

	s.debouncedTerm = term
	key := strings.TrimSpace(term)

	if accounts, ok := s.cache.Get(key); ok {
		s.accounts = accounts
		s.lastSearchedTerm = term
		s.loading = false
		s.errMsg = ""
		s.notifyLocked()
		return
	}

	// Previous results stay visible while the new key loads.
	s.loading = true
	s.errMsg = ""
	s.notifyLocked()

	if s.inflight[key] {
		return
	}
	s.inflight[key] = true

	go s.lookup(key)
}

// lookup fetches one key and applies the completion. Completions for a
// superseded key are cached but not displayed: display state always
// follows the cached value of the latest key, so a slow early request
// cannot clobber a fast later one.
func (s *Session) lookup(key string) {
	accounts, err := s.fetcher.SearchAccounts(s.ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, key)
	if s.closed {
		return
	}

	current := strings.TrimSpace(s.debouncedTerm) == key

	if err != nil {
		if current {
			s.loading = false
			s.errMsg = err.Error()
			s.notifyLocked()
		}
		return
	}

	if accounts == nil {
		accounts = []api.Account{}
	}
	s.cache.Set(key, accounts)

	if !current {
		return
	}

	s.accounts = accounts
	s.lastSearchedTerm = s.debouncedTerm
	s.loading = false
	s.errMsg = ""
	s.notifyLocked()
}

// notifyLocked signals Updates without blocking. Callers hold s.mu.
func (s *Session) notifyLocked() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
