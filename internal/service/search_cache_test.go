//go:build !integration

package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/grimoire-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualClock is a settable time source for cache tests.
type manualClock struct {
	mu sync.Mutex
	t  time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *manualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t
}

func (m *manualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = m.t.Add(d)
}

func page(names ...string) model.SearchPage {
	cards := make([]model.Card, 0, len(names))
	for _, n := range names {
		cards = append(cards, model.Card{ID: n, Name: n})
	}
	return model.SearchPage{Data: cards}
}

func TestResponseCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*ResponseCache, *manualClock)
		key           string
		expectedValue model.SearchPage
		expectedFound bool
	}{
		{
			name: "returns value when present and not expired",
			setup: func(c *ResponseCache, _ *manualClock) {
				c.Set("a", page("bolt"))
			},
			key:           "a",
			expectedValue: page("bolt"),
			expectedFound: true,
		},
		{
			name:          "returns false when key not found",
			setup:         func(*ResponseCache, *manualClock) {},
			key:           "missing",
			expectedFound: false,
		},
		{
			name: "returns value exactly at expiry",
			setup: func(c *ResponseCache, clock *manualClock) {
				c.Set("a", page("bolt"))
				clock.Advance(30 * time.Second)
			},
			key:           "a",
			expectedValue: page("bolt"),
			expectedFound: true,
		},
		{
			name: "returns false once expiry has passed",
			setup: func(c *ResponseCache, clock *manualClock) {
				c.Set("a", page("bolt"))
				clock.Advance(30*time.Second + time.Millisecond)
			},
			key:           "a",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newManualClock()
			c := NewResponseCache(30*time.Second, 10, WithClock(clock.Now))
			tt.setup(c, clock)

			value, found := c.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestResponseCache_ExpiredEntryIsRemoved(t *testing.T) {
	clock := newManualClock()
	c := NewResponseCache(time.Second, 10, WithClock(clock.Now))

	c.Set("a", page("bolt"))
	clock.Advance(2 * time.Second)

	_, found := c.Get("a")
	assert.False(t, found)
	assert.Equal(t, 0, c.Len())

	// Re-inserting behaves like a new key
	c.Set("a", page("shock"))
	value, found := c.Get("a")
	require.True(t, found)
	assert.Equal(t, page("shock"), value)
	assert.Equal(t, 1, c.Len())
}

func TestResponseCache_KeysRetrievableUnderCapacity(t *testing.T) {
	clock := newManualClock()
	c := NewResponseCache(time.Minute, 5, WithClock(clock.Now))

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), page(fmt.Sprintf("card%d", i)))
		clock.Advance(time.Second)
	}

	for i := 0; i < 5; i++ {
		value, found := c.Get(fmt.Sprintf("k%d", i))
		require.True(t, found, "k%d", i)
		assert.Equal(t, page(fmt.Sprintf("card%d", i)), value)
	}
	assert.Zero(t, c.Metrics().Evictions)
}

func TestResponseCache_EvictsLeastRecentlyAccessed(t *testing.T) {
	clock := newManualClock()
	c := NewResponseCache(time.Minute, 2, WithClock(clock.Now))

	c.Set("A", page("a")) // t=0
	clock.Advance(time.Second)
	c.Set("B", page("b")) // t=1
	clock.Advance(time.Second)
	_, found := c.Get("A") // t=2
	require.True(t, found)
	clock.Advance(time.Second)
	c.Set("C", page("c")) // t=3

	_, found = c.Get("B")
	assert.False(t, found, "B should be evicted")
	_, found = c.Get("A")
	assert.True(t, found)
	_, found = c.Get("C")
	assert.True(t, found)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestResponseCache_Contains(t *testing.T) {
	clock := newManualClock()
	c := NewResponseCache(30*time.Second, 2, WithClock(clock.Now))

	c.Set("A", page("a")) // t=0
	clock.Advance(time.Second)
	c.Set("B", page("b")) // t=1
	clock.Advance(time.Second)

	assert.True(t, c.Contains("A"))
	assert.False(t, c.Contains("missing"))
	assert.Equal(t, int64(0), c.Metrics().Hits)
	assert.Equal(t, int64(0), c.Metrics().Misses)

	c.Set("C", page("c")) // t=2, A was only peeked so it is still least recent
	assert.False(t, c.Contains("A"))
	assert.True(t, c.Contains("B"))

	clock.Advance(30 * time.Second)
	assert.False(t, c.Contains("B"), "expired entries are not reported")
	assert.Equal(t, 2, c.Len(), "Contains does not remove expired entries")
}

func TestResponseCache_EvictsExactlyOne(t *testing.T) {
	clock := newManualClock()
	c := NewResponseCache(time.Minute, 3, WithClock(clock.Now))

	for _, k := range []string{"a", "b", "c"} {
		c.Set(k, page(k))
		clock.Advance(time.Second)
	}
	// Touch in reverse so "c" becomes least recent
	for _, k := range []string{"c", "b", "a"} {
		_, _ = c.Get(k)
		clock.Advance(time.Second)
	}

	c.Set("d", page("d"))

	assert.Equal(t, 3, c.Len())
	_, found := c.Get("c")
	assert.False(t, found)
	for _, k := range []string{"a", "b", "d"} {
		_, found := c.Get(k)
		assert.True(t, found, k)
	}
}

func TestResponseCache_OverwriteDoesNotEvict(t *testing.T) {
	clock := newManualClock()
	c := NewResponseCache(10*time.Second, 2, WithClock(clock.Now))

	c.Set("a", page("a1"))
	c.Set("b", page("b1"))
	clock.Advance(8 * time.Second)
	c.Set("a", page("a2"))

	assert.Equal(t, 2, c.Len())
	assert.Zero(t, c.Metrics().Evictions)

	// Overwrite refreshed the TTL for "a" but not for "b"
	clock.Advance(5 * time.Second)
	value, found := c.Get("a")
	require.True(t, found)
	assert.Equal(t, page("a2"), value)
	_, found = c.Get("b")
	assert.False(t, found)
}

func TestResponseCache_NeverExceedsMaxEntries(t *testing.T) {
	c := NewResponseCache(time.Minute, 4)

	for i := 0; i < 50; i++ {
		c.Set(fmt.Sprintf("k%d", i), page("x"))
		assert.LessOrEqual(t, c.Len(), 4)
	}
	assert.Equal(t, int64(46), c.Metrics().Evictions)
}

func TestResponseCache_Metrics(t *testing.T) {
	c := NewResponseCache(time.Minute, 8)

	c.Set("a", page("a"))
	_, _ = c.Get("a")
	_, _ = c.Get("a")
	_, _ = c.Get("b")

	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 8, m.Capacity)
}

func TestNewResponseCache_Defaults(t *testing.T) {
	c := NewResponseCache(0, 0)

	assert.Equal(t, DefaultCacheTTL, c.ttl)
	assert.Equal(t, DefaultCacheMaxEntries, c.Metrics().Capacity)
}

func TestResponseCache_ConcurrentAccess(t *testing.T) {
	c := NewResponseCache(time.Minute, 16)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (i+j)%40)
				c.Set(key, page(key))
				_, _ = c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 16)
}
