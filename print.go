package lfucache

import (
	"fmt"
	"strings"
)

// String dumps the frequency list, lowest count first, each bucket's keys
// from most to least recently touched.
func (c *Cache[K, V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "lfucache(%d/%d)", c.length, c.capacity)
	for b := c.head; b != nil; b = b.next {
		fmt.Fprintf(&sb, " [%d:", b.count)
		for n := b.recent; n != nil; n = n.next {
			fmt.Fprintf(&sb, " %v", n.key)
		}
		sb.WriteString("]")
	}
	return sb.String()
}
