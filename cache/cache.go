// Package cache provides the in-process TTL cache consulted by the
// slow-changing endpoints. Entries expire lazily: an invalid entry is removed
// on the next read of its key, never by a background sweep.
package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL applies when Set receives a non-positive ttl.
const DefaultTTL = 60 * time.Second

type entry struct {
	value     any
	timestamp time.Time
	ttl       time.Duration
}

func (e entry) valid(now time.Time) bool {
	return now.Sub(e.timestamp) < e.ttl
}

type TTLCache struct {
	mu    sync.Mutex
	items map[string]entry

	// Now is injectable for tests; defaults to time.Now in UTC.
	Now func() time.Time
}

func New() *TTLCache {
	return &TTLCache{
		items: map[string]entry{},
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the value stored under key when the entry is still valid. An
// expired entry is deleted on this read and reported as a miss.
func (c *TTLCache) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !item.valid(c.now()) {
		delete(c.items, key)
		return nil, false
	}
	return item.value, true
}

// Set unconditionally overwrites any existing entry for key with a fresh
// timestamp.
func (c *TTLCache) Set(key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.items == nil {
		c.items = map[string]entry{}
	}
	c.items[key] = entry{value: value, timestamp: c.now(), ttl: ttl}
}

// Clear removes every entry whose key contains any of the given patterns as
// a substring. With no patterns it empties the cache.
func (c *TTLCache) Clear(patterns ...string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(patterns) == 0 {
		c.items = map[string]entry{}
		return
	}
	for key := range c.items {
		for _, pattern := range patterns {
			if strings.Contains(key, pattern) {
				delete(c.items, key)
				break
			}
		}
	}
}

// Len counts the currently stored entries, expired ones included; expiry is
// only observable through Get.
func (c *TTLCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *TTLCache) now() time.Time {
	if c != nil && c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}
