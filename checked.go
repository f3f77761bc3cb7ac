//go:build lfucheck

package lfucache

func (c *Cache[K, V]) check() {
	if err := c.invariants(); err != nil {
		c.bug(err)
	}
}

func (c *Cache[K, V]) bug(err error) {
	panic("bug: " + err.Error() + "\n" + c.String())
}
