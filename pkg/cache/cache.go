// Copyright FeedbackHQ and contributors.
// SPDX-License-Identifier: MIT

// Package cache provides a TTL-bounded in-memory cache keyed by string.
// It replaces ambient request-level caching with an explicit service that
// is constructed once and injected into its consumers.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value      T
	insertedAt time.Time
}

// Cache is a read-mostly store whose entries expire after a fixed TTL.
// It is safe for concurrent use.
type Cache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[T]
}

// New creates a cache whose entries are served for at most ttl.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[T]),
	}
}

// Get returns the cached value for key if it was stored within the TTL.
// Expired entries are removed on access.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry and resetting
// its age.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[T]{value: value, insertedAt: c.now()}
}

// Len reports the number of entries currently held, including any that
// have expired but not yet been evicted.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SetClock overrides the time source. Intended for tests.
func (c *Cache[T]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
