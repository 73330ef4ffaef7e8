package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, float64](10)
	c.Set("12", 15.5)

	got, ok := c.Get("12")
	if !ok || got != 15.5 {
		t.Fatalf("Get(12) = %v, %v; want 15.5, true", got, ok)
	}
	if _, ok := c.Get("13"); ok {
		t.Error("Get(13) reported a hit on an empty key")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 7
	}

	for range 3 {
		if v := c.GetOrCreate("k", create); v != 7 {
			t.Fatalf("GetOrCreate = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("stats hits=%d misses=%d, want 2/1", s.Hits, s.Misses)
	}
}

func TestCacheResetIsWholesale(t *testing.T) {
	c := New[string, int](0)
	for i := 1; i <= 31; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	if c.Len() != 31 {
		t.Fatalf("Len = %d, want 31", c.Len())
	}

	gen := c.Reset()
	if gen != 1 || c.Stats().Generation != 1 {
		t.Errorf("generation = %d, want 1", gen)
	}
	if c.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", c.Len())
	}
	if _, ok := c.Get("1"); ok {
		t.Error("entry survived Reset")
	}
}

func TestCacheSoftLimitEvictsOldest(t *testing.T) {
	c := New[int, int](8)
	for i := range 8 {
		c.Set(i, i)
	}
	// Touch 0 so it is the most recently used entry.
	c.Get(0)
	c.Set(100, 100)

	if c.Len() > 8 {
		t.Fatalf("Len = %d, exceeds soft limit", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used entry 0 was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("least recently used entry 1 survived eviction")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](0)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				c.GetOrCreate(i, func() int { return i * g })
			}
		}()
	}
	wg.Wait()
	if c.Len() != 100 {
		t.Errorf("Len = %d, want 100", c.Len())
	}
}
