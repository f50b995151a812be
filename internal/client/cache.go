package client

import (
	"sync"
	"time"
)

type entry struct {
	items []TodoItem
	exp   time.Time
}

// MemoryCache is an in-process ListCache with a fixed TTL per key.
type MemoryCache struct {
	mu  sync.RWMutex
	m   map[string]entry
	ttl time.Duration
}

// NewMemoryCache creates a MemoryCache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{m: make(map[string]entry), ttl: ttl}
}

func (c *MemoryCache) Get(key string) ([]TodoItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.m[key]
	if !ok || time.Now().After(e.exp) {
		return nil, false
	}
	return e.items, true
}

func (c *MemoryCache) Set(key string, items []TodoItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = entry{items: items, exp: time.Now().Add(c.ttl)}
}

func (c *MemoryCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}
