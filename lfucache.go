package lfucache

import (
	"github.com/pkg/errors"
)

// ErrInvalidCapacity is returned by New for a capacity below one.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// Cache is an LFU cache structure. It is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	length   int
	index    map[K]*entry[K, V]

	// head is the bucket with the lowest count, nil once every key has been
	// deleted.
	head *bucket[K]
}

type entry[K comparable, V any] struct {
	value  V
	bucket *bucket[K]
}

// New initializes a new LFU Cache holding at most capacity keys.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "cannot create cache of size %d", capacity)
	}

	c := &Cache[K, V]{capacity: capacity}
	c.reset()
	return c, nil
}

// MustNew is like New but panics if the capacity is invalid.
func MustNew[K comparable, V any](capacity int) *Cache[K, V] {
	c, err := New[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return c
}

// Put stores value under key. Overwriting an existing key keeps its access
// count and position; it is not an access. Inserting a new key into a full
// cache evicts the least frequently used key first, the least recently
// touched one among equals.
func (c *Cache[K, V]) Put(key K, value V) {
	c.check()
	defer c.check()

	if e, ok := c.index[key]; ok {
		e.value = value
		return
	}

	if c.length == c.capacity {
		c.evict()
	}

	if c.head == nil || c.head.count > 0 {
		c.head = newBucket[K](0, nil, c.head)
	}

	c.head.add(key)
	c.index[key] = &entry[K, V]{value: value, bucket: c.head}
	c.length++
}

// Get returns the value stored under key and increments its access count.
// The boolean is false on a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.check()
	defer c.check()

	e, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	cur := e.bucket
	next := cur.next
	if next == nil || next.count != cur.count+1 {
		next = newBucket(cur.count+1, cur, cur.next)
	}

	cur.remove(key)
	next.add(key)
	e.bucket = next

	if cur.isEmpty() {
		c.deleteBucket(cur)
	}

	return e.value, true
}

// Delete removes key from the cache and returns true. Does nothing and
// returns false if the key was not present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.check()
	defer c.check()

	e, ok := c.index[key]
	if !ok {
		return false
	}
	c.deleteEntry(key, e)
	return true
}

// Flush discards every key. The cache is reusable as if freshly created.
func (c *Cache[K, V]) Flush() {
	c.reset()
	c.check()
}

// Len returns the number of keys in the cache.
func (c *Cache[K, V]) Len() int {
	return c.length
}

// Cap returns the maximum number of keys the cache holds.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Frequency returns the access count of key without touching it.
func (c *Cache[K, V]) Frequency(key K) (int, bool) {
	e, ok := c.index[key]
	if !ok {
		return 0, false
	}
	return e.bucket.count, true
}

func (c *Cache[K, V]) reset() {
	c.index = make(map[K]*entry[K, V])
	c.head = newBucket[K](0, nil, nil)
	c.length = 0
}

// evict removes the stale end of the head bucket.
func (c *Cache[K, V]) evict() {
	if c.head == nil {
		return
	}
	key, ok := c.head.staleKey()
	if !ok {
		return
	}
	c.deleteEntry(key, c.index[key])
}

func (c *Cache[K, V]) deleteEntry(key K, e *entry[K, V]) {
	b := e.bucket
	b.remove(key)
	if b.isEmpty() {
		c.deleteBucket(b)
	}

	delete(c.index, key)
	c.length--
}

func (c *Cache[K, V]) deleteBucket(b *bucket[K]) {
	if b == c.head {
		c.head = b.next
	}
	b.unlink()
}
