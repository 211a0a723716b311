package repository

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultLRUSize = 1024

// LRUCache is an in-process, size-bounded CacheRepository.
type LRUCache struct {
	cache *lru.Cache[string, string]
}

func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		size = DefaultLRUSize
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &LRUCache{cache: c}, nil
}

func (c *LRUCache) Get(_ context.Context, key string) (string, bool) {
	return c.cache.Get(key)
}

func (c *LRUCache) Set(_ context.Context, key string, value string) error {
	c.cache.Add(key, value)
	return nil
}

func (c *LRUCache) Len() int {
	return c.cache.Len()
}
