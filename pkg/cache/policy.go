package cache

// RecencyView is the read-only view of the recency order a policy sees
// when choosing a victim. All calls happen under the cache lock.
type RecencyView[K comparable] interface {
	// Oldest returns the key at the least-recently-used end,
	// or false if the cache is empty.
	Oldest() (K, bool)
	// Len returns the number of resident entries.
	Len() int
}

// Policy chooses which entry to evict when an insert would exceed
// capacity. Victim is invoked under the cache lock and must return a
// resident key; returning false skips the eviction, which makes the
// subsequent insert fail the capacity invariant, so only an empty view
// justifies it.
type Policy[K comparable] interface {
	Victim(view RecencyView[K]) (K, bool)
}

// lruPolicy evicts the entry that has spent the longest continuous time at
// the back of the recency order. Entries never accessed after insertion
// keep their insertion order among themselves, so structural order alone
// decides ties.
type lruPolicy[K comparable] struct{}

// LRU returns the least-recently-used eviction policy. It is the default
// for every cache constructed by New.
func LRU[K comparable]() Policy[K] {
	return lruPolicy[K]{}
}

func (lruPolicy[K]) Victim(view RecencyView[K]) (K, bool) {
	return view.Oldest()
}
