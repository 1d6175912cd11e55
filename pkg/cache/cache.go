package cache

import (
	"errors"
	"sync"
)

// ErrInvalidCapacity is returned by New for a capacity below 1. A cache
// with no room for entries cannot uphold its own invariants, so the
// mistake is rejected at construction rather than discovered later.
var ErrInvalidCapacity = errors.New("cache: capacity must be at least 1")

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Len       int   `json:"len"`
	Capacity  int   `json:"capacity"`
}

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithPolicy replaces the default LRU eviction policy.
func WithPolicy[K comparable, V any](p Policy[K]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.policy = p
	}
}

// WithOnEvict registers a callback invoked for every capacity-triggered
// eviction, after the victim is unlinked from both structures.
//
// The callback runs under the cache lock and must not call back into the
// cache. Explicit Remove and Clear do not trigger it.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// Cache is a fixed-capacity key-value cache with LRU eviction.
//
// A map indexes entries by key; the map values are stable handles into an
// intrusive doubly-linked list holding the recency order. Capacity is set
// at construction and never changes. The zero value is not usable; use New.
type Cache[K comparable, V any] struct {
	mu sync.Mutex

	capacity int
	items    map[K]*node[K, V]
	order    *recencyList[K, V]

	policy  Policy[K]
	onEvict func(K, V)

	hits      int64
	misses    int64
	evictions int64
}

// New constructs a cache holding at most capacity entries.
//
// Map growth and node allocation can still fail if the host runs out of
// memory; Go surfaces that as a runtime panic, never as a silently
// shrunken cache.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
		order:    newRecencyList[K, V](),
		policy:   LRU[K](),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get returns the value stored for key and promotes the entry to most
// recently used. A miss is the second return being false; it changes
// nothing, not even another entry's position.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.order.moveToFront(n)
	c.hits++
	return n.value, true
}

// Put stores value under key and makes the entry most recently used.
//
// An existing entry is overwritten in place. A new entry that would exceed
// capacity evicts the policy's victim first, so the cache never holds more
// than capacity entries at any observable point.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.items[key]; ok {
		n.value = value
		c.order.moveToFront(n)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictLocked()
	}

	n := &node[K, V]{key: key, value: value}
	c.order.pushFront(n)
	c.items[key] = n
}

// Remove deletes key regardless of capacity pressure and returns the prior
// value. It is not an access: no other entry's recency changes, and the
// eviction callback is not invoked.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	delete(c.items, key)
	c.order.remove(n)
	return n.value, true
}

// Peek returns the value for key without promoting the entry. Stats are
// not touched either; Peek is an observation, not an access.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Oldest returns the current eviction candidate without disturbing it.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.order.back()
	if n == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return n.key, n.value, true
}

// Len returns the number of resident entries, always in [0, Cap()].
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Clear drops every entry. Capacity and counters are unchanged.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*node[K, V], c.capacity)
	c.order = newRecencyList[K, V]()
}

// Keys returns the resident keys in MRU -> LRU order.
//
// This is a debug/observability helper; it snapshots under the lock, so
// the slice is consistent but immediately stale under concurrent use.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]K, 0, c.order.len())
	for n := c.order.head.next; n != c.order.tail; n = n.next {
		out = append(out, n.key)
	}
	return out
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Len:       len(c.items),
		Capacity:  c.capacity,
	}
}

// evictLocked removes the policy's victim from both structures.
func (c *Cache[K, V]) evictLocked() {
	key, ok := c.policy.Victim(recencyView[K, V]{c})
	if !ok {
		return
	}

	n, ok := c.items[key]
	if !ok {
		// Policy returned a non-resident key; nothing to unlink.
		return
	}

	delete(c.items, key)
	c.order.remove(n)
	c.evictions++

	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
}

// recencyView adapts a cache to the read-only view policies consume.
// Methods are called with c.mu already held.
type recencyView[K comparable, V any] struct {
	c *Cache[K, V]
}

func (v recencyView[K, V]) Oldest() (K, bool) {
	n := v.c.order.back()
	if n == nil {
		var zero K
		return zero, false
	}
	return n.key, true
}

func (v recencyView[K, V]) Len() int {
	return v.c.order.len()
}
