package cache

// node is one entry in the recency list. The node itself is the stable
// handle stored in the index map: it is never reallocated or copied while
// the entry is resident, so the map can keep pointing at it across
// promotions of other entries.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// recencyList is a doubly linked list ordered from most recently used
// (front) to least recently used (back). Dummy head and tail sentinels
// avoid nil checks when relinking at either end.
type recencyList[K comparable, V any] struct {
	head *node[K, V] // head.next is the MRU entry
	tail *node[K, V] // tail.prev is the LRU entry
	size int
}

func newRecencyList[K comparable, V any]() *recencyList[K, V] {
	head := &node[K, V]{}
	tail := &node[K, V]{}
	head.next = tail
	tail.prev = head

	return &recencyList[K, V]{head: head, tail: tail}
}

// pushFront links n in right after the head sentinel.
func (l *recencyList[K, V]) pushFront(n *node[K, V]) {
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
	l.size++
}

// moveToFront relinks an already-resident node at the MRU end. Only the
// node's former neighbors and the head sentinel are touched; no allocation,
// and the handle stays valid.
func (l *recencyList[K, V]) moveToFront(n *node[K, V]) {
	if l.head.next == n {
		return
	}

	n.prev.next = n.next
	n.next.prev = n.prev

	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
}

// remove unlinks n from wherever it sits. The pointers are cleared so a
// stale handle cannot silently walk a list it no longer belongs to.
func (l *recencyList[K, V]) remove(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.size--
}

// back returns the current LRU node without unlinking it, or nil when the
// list is empty.
func (l *recencyList[K, V]) back() *node[K, V] {
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}

func (l *recencyList[K, V]) len() int {
	return l.size
}
