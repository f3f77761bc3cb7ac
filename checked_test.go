//go:build lfucheck

package lfucache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedBuildPanicsOnCorruption(t *testing.T) {
	c := MustNew[string, int](3)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")

	c.length++

	var msg string
	func() {
		defer func() {
			msg = fmt.Sprint(recover())
		}()
		c.Get("b")
	}()
	assert.Contains(t, msg, "bug: length 3, index holds 2")
	assert.Contains(t, msg, "lfucache(3/3) [0: b] [1: a]")

	c.length--
	require.NotPanics(t, func() { c.Get("b") })

	c.index["a"].bucket = nil
	assert.Panics(t, func() { c.Put("c", 3) })
}
