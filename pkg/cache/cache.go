// Package cache provides a thread-safe in-memory TTL cache for upstream
// responses, keyed by operation + parameters.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// entry holds a cached value with its expiry deadline.
type entry struct {
	value     any
	expiresAt time.Time
	storedAt  time.Time
}

// Cache is a thread-safe TTL cache with a size cap. Expired entries are
// cleaned up lazily on Get and in bulk by ClearExpired; when the cap is
// reached, Set evicts the oldest entry.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]*entry
	defaultTTL time.Duration
	maxSize    int

	now func() time.Time
}

// New creates a cache with the given default TTL and size cap.
func New(defaultTTL time.Duration, maxSize int) *Cache {
	return &Cache{
		entries:    make(map[string]*entry),
		defaultTTL: defaultTTL,
		maxSize:    maxSize,
		now:        time.Now,
	}
}

// Key builds a cache key from an operation name and its parameters.
func Key(op string, params ...string) string {
	if len(params) == 0 {
		return op
	}
	return op + ":" + strings.Join(params, ":")
}

// Get returns the cached value if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		// Expired; clean up lazily. Re-check under write lock because a
		// concurrent Set may have stored a fresh entry.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && c.now().After(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores a value with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores a value with an explicit TTL. At the size cap the
// oldest entry is evicted first.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}

	c.entries[key] = &entry{
		value:     value,
		expiresAt: now.Add(ttl),
		storedAt:  now,
	}
}

// Invalidate removes a single key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidatePrefix removes every key starting with the given prefix.
// Used to drop all cached variants of one operation after a write.
func (c *Cache) InvalidatePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// ClearExpired removes every expired entry and reports how many were dropped.
func (c *Cache) ClearExpired() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the current number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictOldestLocked drops the entry with the earliest store time.
// Caller holds the write lock.
func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, e := range c.entries {
		if oldestKey == "" || e.storedAt.Before(oldest) {
			oldestKey = key
			oldest = e.storedAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// String describes the cache for logs.
func (c *Cache) String() string {
	return fmt.Sprintf("cache(entries=%d, max=%d, ttl=%s)", c.Len(), c.maxSize, c.defaultTTL)
}
