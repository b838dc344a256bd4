// Package service contains the business logic for the grimoire card service.
package service

import (
	"sync"
	"time"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/guttosm/grimoire-service/internal/metrics"
	"github.com/guttosm/grimoire-service/internal/service/cache"
)

const (
	// DefaultCacheTTL is how long a search page stays valid after insertion.
	DefaultCacheTTL = 30 * time.Second
	// DefaultCacheMaxEntries bounds the number of cached search pages.
	DefaultCacheMaxEntries = 200
)

// ResponseCache is a TTL cache of upstream search pages with a hard entry cap.
// Expired entries are dropped when read; when full, inserting a new key evicts
// the least recently accessed entry. It is safe for concurrent use.
type ResponseCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	items      map[string]*responseEntry
	// head is the most recently accessed entry, tail the least.
	head      *responseEntry
	tail      *responseEntry
	hits      int64
	misses    int64
	evictions int64
}

type responseEntry struct {
	key            string
	value          model.SearchPage
	expiresAt      time.Time
	lastAccessedAt time.Time
	prev           *responseEntry
	next           *responseEntry
}

// ResponseCacheOption configures a ResponseCache.
type ResponseCacheOption func(*ResponseCache)

// WithClock overrides the time source used for expiry and access tracking.
func WithClock(now func() time.Time) ResponseCacheOption {
	return func(c *ResponseCache) {
		c.now = now
	}
}

// NewResponseCache creates a cache holding at most maxEntries pages for ttl each.
// Non-positive arguments fall back to the package defaults.
func NewResponseCache(ttl time.Duration, maxEntries int, opts ...ResponseCacheOption) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	c := &ResponseCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		items:      make(map[string]*responseEntry, maxEntries),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ cache.PageCacheWithMetrics = (*ResponseCache)(nil)

// Get returns the page stored under key if it has not expired.
// An expired entry is removed as a side effect.
func (c *ResponseCache) Get(key string) (model.SearchPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.misses++
		metrics.RecordCacheOperation("get", "miss")
		return model.SearchPage{}, false
	}

	now := c.now()
	if now.After(entry.expiresAt) {
		c.removeEntry(entry)
		c.misses++
		metrics.RecordCacheOperation("get", "expired")
		return model.SearchPage{}, false
	}

	entry.lastAccessedAt = now
	c.moveToFront(entry)
	c.hits++
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Contains reports whether key holds an unexpired entry. It leaves hit and
// miss counters, access order and expired entries untouched.
func (c *ResponseCache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	return ok && !c.now().After(entry.expiresAt)
}

// Set stores value under key for the configured TTL.
// Overwriting an existing key refreshes its expiry and access time.
func (c *ResponseCache) Set(key string, value model.SearchPage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = now.Add(c.ttl)
		entry.lastAccessedAt = now
		c.moveToFront(entry)
		metrics.RecordCacheOperation("set", "overwrite")
		return
	}

	if len(c.items) >= c.maxEntries {
		c.evictLeastRecent()
	}

	entry := &responseEntry{
		key:            key,
		value:          value,
		expiresAt:      now.Add(c.ttl),
		lastAccessedAt: now,
	}
	c.items[key] = entry
	c.addToFront(entry)
	metrics.RecordCacheOperation("set", "success")
}

// Len returns the number of entries currently held, including ones that
// have expired but not yet been read.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Metrics returns current cache performance metrics.
func (c *ResponseCache) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.maxEntries,
	}
}

// evictLeastRecent drops the tail entry. Access order is kept in the list,
// so the tail always has the smallest lastAccessedAt.
func (c *ResponseCache) evictLeastRecent() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
	c.evictions++
	metrics.RecordCacheOperation("evict", "capacity")
}

func (c *ResponseCache) removeEntry(entry *responseEntry) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ResponseCache) moveToFront(entry *responseEntry) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ResponseCache) addToFront(entry *responseEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ResponseCache) unlink(entry *responseEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}
