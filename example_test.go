package lfucache_test

import (
	"fmt"
	"sync"

	lfucache "github.com/ahume/tiny-lfu-cache"
)

func ExampleCache() {
	c := lfucache.MustNew[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")    // a is now used more often than b
	c.Put("c", 3) // evicts b

	for _, k := range []string{"a", "b", "c"} {
		v, ok := c.Get(k)
		fmt.Println(k, v, ok)
	}
	// Output:
	// a 1 true
	// b 0 false
	// c 3 true
}

func ExampleCache_String() {
	c := lfucache.MustNew[string, int](3)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	fmt.Println(c)
	// Output: lfucache(2/3) [0: b] [1: a]
}

// A Cache shared between goroutines needs one lock around every call,
// including Get, which mutates the frequency list.
func Example_mutex() {
	var mu sync.Mutex
	c := lfucache.MustNew[int, int](100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			c.Put(i, i*i)
			c.Get(i)
		}(i)
	}
	wg.Wait()

	fmt.Println(c.Len())
	// Output: 10
}
