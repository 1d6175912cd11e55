// Package cache provides a fixed-capacity, concurrency-safe LRU cache.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and an intrusive doubly-linked list
// maintains recency ordering, so Get, Put and Remove are all O(1).
//
// Every public operation takes a single lock for its full duration, so the
// cache is safe for concurrent use. There are no background goroutines and
// no expiry; eviction happens only when a Put would exceed capacity.
package cache
