package lfucache

// A bucket is a node in the frequency list. It holds every key that has been
// accessed exactly count times, ordered from most recently touched to least.
type bucket[K comparable] struct {
	count int
	prev  *bucket[K]
	next  *bucket[K]

	recent *keyNode[K]
	stale  *keyNode[K]
	nodes  map[K]*keyNode[K]
}

type keyNode[K comparable] struct {
	key  K
	prev *keyNode[K] // towards recent
	next *keyNode[K] // towards stale
}

// newBucket creates a bucket and links it between prev and next, either of
// which may be nil.
func newBucket[K comparable](count int, prev, next *bucket[K]) *bucket[K] {
	b := &bucket[K]{
		count: count,
		prev:  prev,
		next:  next,
		nodes: make(map[K]*keyNode[K]),
	}
	if prev != nil {
		prev.next = b
	}
	if next != nil {
		next.prev = b
	}
	return b
}

// unlink removes b from the frequency list.
func (b *bucket[K]) unlink() {
	if b.prev != nil {
		b.prev.next = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	}
	b.prev = nil
	b.next = nil
}

// add puts key at the recent end. Adding a key already present does nothing.
func (b *bucket[K]) add(key K) {
	if _, ok := b.nodes[key]; ok {
		return
	}

	n := &keyNode[K]{key: key, next: b.recent}
	if b.recent != nil {
		b.recent.prev = n
	} else {
		b.stale = n
	}
	b.recent = n
	b.nodes[key] = n
}

// remove detaches key, if present.
func (b *bucket[K]) remove(key K) {
	n, ok := b.nodes[key]
	if !ok {
		return
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		b.recent = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		b.stale = n.prev
	}

	delete(b.nodes, key)
}

func (b *bucket[K]) isEmpty() bool {
	return len(b.nodes) == 0
}

func (b *bucket[K]) len() int {
	return len(b.nodes)
}

// staleKey returns the least recently touched key without removing it.
func (b *bucket[K]) staleKey() (K, bool) {
	if b.stale == nil {
		var zero K
		return zero, false
	}
	return b.stale.key, true
}
