// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
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

func TestLRU_BasicOperations(t *testing.T) {
	c := NewLRU[int](3, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := c.Get(key)
		if !ok || got != want {
			t.Errorf("Get(%q) = %d, %v; want %d, true", key, got, ok, want)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU[int](3, time.Minute)
	var causes []string
	c.OnEvict(func(cause string) { causes = append(causes, cause) })

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)
	c.Get("a")
	c.Add("d", 4)

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %q to be present", key)
		}
	}
	if len(causes) != 1 || causes[0] != CauseCapacity {
		t.Errorf("causes = %v, want [capacity]", causes)
	}
}

func TestLRU_UpdateRefreshes(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("a", 10)
	c.Add("c", 3)

	if v, ok := c.Get("a"); !ok || v != 10 {
		t.Errorf("Get(a) = %d, %v; want 10, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted after a was refreshed")
	}
}

func TestLRU_TTLExpiration(t *testing.T) {
	clock := newFakeClock()
	c := NewLRU[int](10, time.Minute)
	c.now = clock.Now

	var causes []string
	c.OnEvict(func(cause string) { causes = append(causes, cause) })

	c.Add("a", 1)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected a before expiry")
	}

	clock.Advance(61 * time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to expire")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
	if len(causes) != 1 || causes[0] != CauseExpired {
		t.Errorf("causes = %v, want [expired]", causes)
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	clock := newFakeClock()
	c := NewLRU[int](10, time.Minute)
	c.now = clock.Now

	c.Add("old1", 1)
	c.Add("old2", 2)
	clock.Advance(45 * time.Second)
	c.Add("fresh", 3)
	clock.Advance(30 * time.Second)

	if removed := c.CleanupExpired(); removed != 2 {
		t.Errorf("CleanupExpired = %d, want 2", removed)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("expected fresh to survive cleanup")
	}
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[string](10, time.Minute)
	c.Add("a", "x")
	c.Add("b", "y")

	if !c.Remove("a") {
		t.Error("Remove(a) = false, want true")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
	c.Add("c", "z")
	if v, ok := c.Get("c"); !ok || v != "z" {
		t.Error("cache unusable after Clear")
	}
}

func TestLRU_Stats(t *testing.T) {
	c := NewLRU[int](10, time.Minute)
	c.Add("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	hits, misses, size := c.Stats()
	if hits != 2 || misses != 1 || size != 1 {
		t.Errorf("Stats = %d/%d/%d, want 2/1/1", hits, misses, size)
	}
}

func TestLRU_Defaults(t *testing.T) {
	c := NewLRU[int](0, 0)
	if c.capacity != 10000 {
		t.Errorf("capacity = %d, want 10000", c.capacity)
	}
	if c.ttl != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m", c.ttl)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[int](100, time.Minute)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (g*200+i)%150)
				c.Add(key, i)
				c.Get(key)
				if i%10 == 0 {
					c.Remove(key)
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len = %d exceeds capacity", c.Len())
	}
}
