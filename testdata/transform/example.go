package tally

import (
	"fmt"
	"sort"
)

// Counter accumulates how often each key has been seen.
type Counter struct {
	counts map[string]int
}

func NewCounter() *Counter {
	fmt.Println("creating counter")
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Add(key string) {
	fmt.Printf("adding %s\n", key)
	c.counts[key]++
}

func (c *Counter) Keys() []string {
	keys := make([]string, 0, len(c.counts))
	for key := range c.counts {
		println(key)
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (c *Counter) Dump() {
	for _, key := range c.Keys() {
		fmt.Println(key, c.counts[key])
	}
}
