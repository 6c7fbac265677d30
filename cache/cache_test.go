package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedCacheSetGet(t *testing.T) {
	c := NewFeedCache(time.Minute)

	_, ok := c.Get("feed:global")
	assert.False(t, ok)

	c.Set("feed:global", "payload")
	got, ok := c.Get("feed:global")
	assert.True(t, ok)
	assert.Equal(t, "payload", got)
}

func TestFeedCacheInvalidate(t *testing.T) {
	c := NewFeedCache(time.Minute)
	c.Set("feed:global", "payload")

	c.Invalidate("feed:global")
	_, ok := c.Get("feed:global")
	assert.False(t, ok)
}

func TestFeedCacheExpiry(t *testing.T) {
	c := NewFeedCache(50 * time.Millisecond)
	c.Set("feed:global", "payload")

	time.Sleep(120 * time.Millisecond)
	_, ok := c.Get("feed:global")
	assert.False(t, ok)
}
