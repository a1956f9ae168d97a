package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time forward deterministically.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration, maxSize int) (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ttl, maxSize)
	c.now = clock.Now
	return c, clock
}

func TestCache_GetSet(t *testing.T) {
	c, _ := newTestCache(time.Minute, 10)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v")
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestCache_Expiry(t *testing.T) {
	c, clock := newTestCache(time.Minute, 10)
	c.Set("k", "v")

	clock.Advance(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry is removed lazily on Get")
}

func TestCache_SetWithTTL(t *testing.T) {
	c, clock := newTestCache(time.Minute, 10)
	c.SetWithTTL("short", "v", time.Second)

	clock.Advance(2 * time.Second)
	_, ok := c.Get("short")
	assert.False(t, ok)
}

func TestCache_EvictsOldestAtCap(t *testing.T) {
	c, clock := newTestCache(time.Hour, 3)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
		clock.Advance(time.Second)
	}
	assert.Equal(t, 3, c.Len())

	c.Set("k3", 3)
	assert.Equal(t, 3, c.Len())

	_, ok := c.Get("k0")
	assert.False(t, ok, "oldest entry evicted")
	_, ok = c.Get("k3")
	assert.True(t, ok)
}

func TestCache_OverwriteDoesNotEvict(t *testing.T) {
	c, _ := newTestCache(time.Hour, 2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)

	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, got)
	got, _ = c.Get("a")
	assert.Equal(t, 10, got)
}

func TestCache_ClearExpired(t *testing.T) {
	c, clock := newTestCache(time.Minute, 10)
	c.Set("a", 1)
	c.SetWithTTL("b", 2, time.Hour)

	clock.Advance(2 * time.Minute)
	removed := c.ClearExpired()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("b")
	assert.True(t, ok)
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c, _ := newTestCache(time.Minute, 10)
	c.Set(Key("client_data", "hash-1"), "a")
	c.Set(Key("client_data", "hash-2"), "b")
	c.Set(Key("ticket_status", "t-1"), "c")

	removed := c.InvalidatePrefix("client_data")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "op", Key("op"))
	assert.Equal(t, "op:a:b", Key("op", "a", "b"))
}
