package faqcache

import (
	"context"
	"sync"
	"time"

	clockport "github.com/uf-sase-hacks/registration-api/internal/ports/out/clock"
)

type entry struct {
	val       []byte
	expiresAt time.Time
}

// Cache is an in-memory implementation of faqcache.Cache with TTL expiry.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	clk     clockport.Clock
}

func NewCache(clk clockport.Clock) *Cache {
	return &Cache{entries: make(map[string]entry), clk: clk}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.clk.Now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return append([]byte(nil), e.val...), true, nil
}

func (c *Cache) Put(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		val:       append([]byte(nil), val...),
		expiresAt: c.clk.Now().Add(ttl),
	}
	return nil
}
