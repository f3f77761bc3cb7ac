/*
Package lfucache implements an O(1) LFU (Least Frequently Used) cache.

This structure is described in the paper "An O(1) algorithm for implementing
the LFU cache eviction scheme" by K. Shah, A. Mitra and D. Matani. It is
based on two levels of doubly linked lists: an ascending list of frequency
buckets, each holding the keys accessed exactly that many times ordered by
recency. Insert, access and eviction are all O(1).

A new key starts at count zero. Each Get increments the count of the key;
overwriting a key with Put does not. When a new key is inserted into a full
cache, the key with the lowest count is evicted, the least recently touched
one among those sharing that count.

A Cache is not safe for concurrent use. Guard it with a single mutex if it is
shared between goroutines.

Building with the lfucheck tag verifies the internal structure before and
after every operation and panics on inconsistency.

Example:

	c := lfucache.MustNew[string, int](1024) // The cache will hold up to 1024 items.
	c.Get("mykey")                           // => 0, false
	c.Put("mykey", 2345)
	v, ok := c.Get("mykey")                  // => v = 2345, ok = true
	c.Flush()

---

Copyright (c) 2013 Jakob Borg. Licensed under the MIT license.
*/
package lfucache
