package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// FeedCache is a small TTL cache for rendered feed pages, keyed by feed
// identity (e.g. "feed:global:1"). Entries fall out on their own after the
// TTL; writers call Invalidate so their post shows up after the window.
type FeedCache struct {
	lru *expirable.LRU[string, interface{}]
}

const defaultSize = 128

func NewFeedCache(ttl time.Duration) *FeedCache {
	return &FeedCache{
		lru: expirable.NewLRU[string, interface{}](defaultSize, nil, ttl),
	}
}

func (c *FeedCache) Get(key string) (interface{}, bool) {
	return c.lru.Get(key)
}

func (c *FeedCache) Set(key string, value interface{}) {
	c.lru.Add(key, value)
}

func (c *FeedCache) Invalidate(key string) {
	c.lru.Remove(key)
}
