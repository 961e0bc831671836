// Vitrine - Exhibition Artist Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vitrine

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestLRU(capacity int, ttl time.Duration) (*LRU[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewLRU[string](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestLRU_GetAndAdd(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU(3, time.Minute)
	c.Add("a", "alpha")
	c.Add("b", "beta")

	if v, ok := c.Get("a"); !ok || v != "alpha" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}

	c.Add("a", "again")
	if v, _ := c.Get("a"); v != "again" {
		t.Errorf("Get(a) after replace = %q", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	stats := c.Stats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.Size != 2 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU(3, time.Minute)
	c.Add("a", "1")
	c.Add("b", "2")
	c.Add("c", "3")

	// Touch a so b becomes the oldest.
	c.Get("a")
	c.Add("d", "4")

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("%s should still be cached", key)
		}
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("Evictions = %d, want 1", ev)
	}
}

func TestLRU_TTLExpiry(t *testing.T) {
	t.Parallel()

	c, clock := newTestLRU(10, time.Minute)
	c.Add("page", "items")

	clock.Advance(59 * time.Second)
	if _, ok := c.Get("page"); !ok {
		t.Fatal("entry expired early")
	}

	clock.Advance(2 * time.Second)
	if _, ok := c.Get("page"); ok {
		t.Error("entry should have expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed on read, Len() = %d", c.Len())
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	t.Parallel()

	c, clock := newTestLRU(10, time.Minute)
	c.Add("old1", "x")
	c.Add("old2", "x")
	clock.Advance(30 * time.Second)
	c.Add("fresh", "x")
	clock.Advance(45 * time.Second)

	if removed := c.CleanupExpired(); removed != 2 {
		t.Errorf("CleanupExpired() = %d, want 2", removed)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry should survive cleanup")
	}
}

func TestLRU_RemoveAndClear(t *testing.T) {
	t.Parallel()

	c, _ := newTestLRU(5, time.Minute)
	c.Add("a", "1")
	c.Add("b", "2")

	if !c.Remove("a") || c.Remove("a") {
		t.Error("Remove should report presence exactly once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Add("c", "3")
	if _, ok := c.Get("c"); !ok {
		t.Error("cache unusable after Clear")
	}
}

func TestNewLRU_Defaults(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](0, 0)
	if c.capacity != DefaultCapacity || c.ttl != DefaultTTL {
		t.Errorf("defaults = %d, %v", c.capacity, c.ttl)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewLRU[int](50, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := strconv.Itoa((g*200 + i) % 80)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	type req struct {
		Query string
		Start int
	}

	a := Key("search", req{"surrealism", 1})
	b := Key("search", req{"surrealism", 1})
	c := Key("search", req{"surrealism", 101})

	if a != b {
		t.Errorf("equal params gave different keys: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different params gave the same key")
	}
	if a[:7] != "search:" {
		t.Errorf("key %q missing namespace", a)
	}
}
