// Package hashtagcache keeps resolved hashtag IDs in memory so that repeated
// searches for the same tag do not hit the Graph API on every request.
package hashtagcache

import (
	"sync"
	"time"
)

type entry struct {
	id         string
	resolvedAt time.Time
}

// Cache is a TTL-bounded map from hashtag to its Graph API identifier.
// Entries are superseded on Put, never mutated; an entry older than the TTL
// is treated as absent. Safe for concurrent use.
type Cache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates a cache whose entries stay live for ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Get returns the cached identifier for tag if a live entry exists.
func (c *Cache) Get(tag string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[tag]
	if !ok || time.Since(e.resolvedAt) >= c.ttl {
		return "", false
	}
	return e.id, true
}

// Put stores a freshly resolved identifier for tag.
func (c *Cache) Put(tag, id string) {
	c.mu.Lock()
	c.entries[tag] = entry{id: id, resolvedAt: time.Now()}
	c.mu.Unlock()
}

// Len reports the number of entries, live or expired.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Invalidate drops every entry. Used by tests.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
