package lfucache

import (
	"github.com/pkg/errors"
)

// invariants walks the whole structure and reports the first inconsistency
// found. The only empty bucket allowed is a count-0 head in an empty cache.
func (c *Cache[K, V]) invariants() error {
	if c.length != len(c.index) {
		return errors.Errorf("length %d, index holds %d", c.length, len(c.index))
	}
	if c.length > c.capacity {
		return errors.Errorf("length %d exceeds capacity %d", c.length, c.capacity)
	}
	if c.length > 0 && c.head == nil {
		return errors.New("no head bucket in non-empty cache")
	}

	count := 0
	var prevB *bucket[K]
	for b := c.head; b != nil; b = b.next {
		if b.prev != prevB {
			return errors.Errorf("incorrect prev bucket pointer at count %d", b.count)
		}
		if prevB != nil && b.count <= prevB.count {
			return errors.Errorf("bucket count %d follows %d", b.count, prevB.count)
		}
		if b.isEmpty() && (b != c.head || b.count != 0 || c.length != 0) {
			return errors.Errorf("empty bucket at count %d", b.count)
		}

		n, err := c.checkBucket(b)
		if err != nil {
			return err
		}
		count += n
		prevB = b
	}

	if count != len(c.index) {
		return errors.Errorf("buckets hold %d keys, index holds %d", count, len(c.index))
	}
	return nil
}

func (c *Cache[K, V]) checkBucket(b *bucket[K]) (int, error) {
	count := 0
	var prev *keyNode[K]
	for n := b.recent; n != nil; n = n.next {
		if count == len(b.nodes) {
			return 0, errors.Errorf("bucket %d lists more keys than it indexes", b.count)
		}
		if n.prev != prev {
			return 0, errors.Errorf("incorrect prev node pointer for %v", n.key)
		}
		if b.nodes[n.key] != n {
			return 0, errors.Errorf("key %v missing from bucket %d index", n.key, b.count)
		}
		e, ok := c.index[n.key]
		if !ok {
			return 0, errors.Errorf("key %v in bucket %d has no entry", n.key, b.count)
		}
		if e.bucket == nil {
			return 0, errors.Errorf("entry %v has no bucket", n.key)
		}
		if e.bucket != b {
			return 0, errors.Errorf("entry %v points at bucket %d, listed in %d", n.key, e.bucket.count, b.count)
		}
		prev = n
		count++
	}

	if b.stale != prev {
		return 0, errors.Errorf("stale pointer of bucket %d not pointing to last node", b.count)
	}
	if count != len(b.nodes) {
		return 0, errors.Errorf("bucket %d lists %d keys, indexes %d", b.count, count, len(b.nodes))
	}
	return count, nil
}
