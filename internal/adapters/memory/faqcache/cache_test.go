package faqcache

import (
	"context"
	"testing"
	"time"

	memclock "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/clock"
)

func TestCache_TTLExpiry(t *testing.T) {
	t.Parallel()

	clk := memclock.NewManualClock(time.Unix(1000, 0).UTC())
	c := NewCache(clk)
	ctx := context.Background()

	if err := c.Put(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Put: %v", err)
	}

	val, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(val) != "v" {
		t.Fatalf("Get = %q %v %v", val, ok, err)
	}

	clk.Advance(59 * time.Second)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatalf("entry expired early")
	}

	clk.Advance(time.Second)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("entry survived its ttl")
	}
}

func TestCache_MissAndOverwrite(t *testing.T) {
	t.Parallel()

	clk := memclock.NewManualClock(time.Unix(1000, 0).UTC())
	c := NewCache(clk)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "absent"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	_ = c.Put(ctx, "k", []byte("old"), time.Minute)
	_ = c.Put(ctx, "k", []byte("new"), time.Minute)
	val, ok, _ := c.Get(ctx, "k")
	if !ok || string(val) != "new" {
		t.Fatalf("Get = %q %v", val, ok)
	}
}
