package seqexpr

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes Parse by source string.  Nodes are immutable, so a cached
// tree can be handed to any number of evaluations.
type Cache struct {
	lru *lru.Cache[string, Node]
}

func NewCache(size int) *Cache {
	c, err := lru.New[string, Node](size)
	if err != nil {
		panic(err)
	}
	return &Cache{lru: c}
}

func (c *Cache) Parse(src string) (Node, error) {
	if n, ok := c.lru.Get(src); ok {
		return n, nil
	}
	n, err := Parse(src)
	if err != nil {
		return nil, err
	}
	c.lru.Add(src, n)
	return n, nil
}
