// Package suffixcache memoizes public-suffix lookups in a bounded LRU.
package suffixcache

import (
	"strconv"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Resolver is the lookup being cached.
type Resolver interface {
	GetTld(host string, icannOnly bool) string
}

// Stats are cumulative counters since construction.
type Stats struct {
	Capacity  int
	Size      int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// cachedResolver wraps a Resolver with an LRU keyed by host and icannOnly.
type cachedResolver struct {
	next      Resolver
	lru       *lru.Cache[string, string]
	capacity  int
	hits      uint64
	misses    uint64
	evictions uint64
}

// newLRU is swapped in tests to simulate construction failures.
var newLRU = func(size int, onEvict func(string, string)) (*lru.Cache[string, string], error) {
	return lru.NewWithEvict(size, onEvict)
}

// New wraps next with a cache of the given capacity. If size <= 0, next is
// returned unwrapped.
func New(next Resolver, size int) (Resolver, error) {
	if size <= 0 {
		return next, nil
	}
	c := &cachedResolver{next: next, capacity: size}
	cache, err := newLRU(size, func(string, string) {
		atomic.AddUint64(&c.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	c.lru = cache
	return c, nil
}

// GetTld returns the cached suffix for host, resolving and storing it on a miss.
func (c *cachedResolver) GetTld(host string, icannOnly bool) string {
	key := cacheKey(host, icannOnly)
	if suffix, ok := c.lru.Get(key); ok {
		atomic.AddUint64(&c.hits, 1)
		return suffix
	}
	atomic.AddUint64(&c.misses, 1)
	suffix := c.next.GetTld(host, icannOnly)
	c.lru.Add(key, suffix)
	return suffix
}

// Stats returns a snapshot of the cache counters.
func (c *cachedResolver) Stats() Stats {
	return Stats{
		Capacity:  c.capacity,
		Size:      c.lru.Len(),
		Hits:      atomic.LoadUint64(&c.hits),
		Misses:    atomic.LoadUint64(&c.misses),
		Evictions: atomic.LoadUint64(&c.evictions),
	}
}

// Purge drops every cached entry. Evictions are counted via the callback.
func (c *cachedResolver) Purge() { c.lru.Purge() }

func cacheKey(host string, icannOnly bool) string {
	return strconv.FormatBool(icannOnly) + "|" + host
}

// StatsOf returns the counters of r when it is a cache, and false otherwise.
func StatsOf(r Resolver) (Stats, bool) {
	if c, ok := r.(*cachedResolver); ok {
		return c.Stats(), true
	}
	return Stats{}, false
}

var _ Resolver = (*cachedResolver)(nil)
