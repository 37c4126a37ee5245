package faqcache

import (
	"context"
	"time"
)

// Cache is a byte-value TTL cache for FAQ payloads. Get reports a miss via
// ok=false; expired entries are misses. Cache failures are returned so the
// caller can decide to degrade (the FAQ path never surfaces them).
type Cache interface {
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	Put(ctx context.Context, key string, val []byte, ttl time.Duration) error
}
