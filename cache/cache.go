// Package cache provides the small generic cache used for text widths.
//
// Entries are grouped into generations: Reset drops every entry at once and
// starts a new generation, so a reader never sees a mix of values computed
// for two different fonts.
//
//	c := cache.New[string, float64](64)
//	c.Set("12", 15.5)
//	w, ok := c.Get("12")
//
// Cache is safe for concurrent use.
package cache

import (
	"sync"
	"sync/atomic"
)

// Cache is a thread-safe map with an optional soft limit.
// When the soft limit is exceeded the least recently used quarter of the
// entries is evicted.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	entries    map[K]*entry[V]
	softLimit  int
	tick       int64
	generation uint64

	hits   atomic.Uint64
	misses atomic.Uint64
}

type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache. A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get returns the value for key and whether it was present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	c.hits.Add(1)
	return e.value, true
}

// Set stores value under key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the cache lock and must not call back into c.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.tick++
		e.atime = c.tick
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	v := create()
	c.setLocked(key, v)
	return v
}

func (c *Cache[K, V]) setLocked(key K, value V) {
	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictLocked()
	}
}

// Reset drops every entry and starts a new generation.
// It returns the new generation number.
func (c *Cache[K, V]) Reset() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[V])
	c.tick = 0
	c.generation++
	return c.generation
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	n, gen := len(c.entries), c.generation
	c.mu.Unlock()

	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:        n,
		SoftLimit:  c.softLimit,
		Generation: gen,
		Hits:       hits,
		Misses:     misses,
		HitRate:    rate,
	}
}

// evictLocked trims the cache to three quarters of the soft limit,
// oldest access first. Caller must hold c.mu.
func (c *Cache[K, V]) evictLocked() {
	target := c.softLimit * 3 / 4
	if target < 1 {
		target = 1
	}
	for len(c.entries) > target {
		var (
			oldestKey K
			oldest    int64 = -1
		)
		for k, e := range c.entries {
			if oldest < 0 || e.atime < oldest {
				oldestKey, oldest = k, e.atime
			}
		}
		delete(c.entries, oldestKey)
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len        int
	SoftLimit  int
	Generation uint64
	Hits       uint64
	Misses     uint64
	HitRate    float64
}
