package faq

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/clock"
	memfaqcache "github.com/uf-sase-hacks/registration-api/internal/adapters/memory/faqcache"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/faqsource"
)

// countingSource records fetches and can be set to fail.
type countingSource struct {
	items   []faqsource.Item
	fetches int
	err     error
}

func (s *countingSource) Fetch(context.Context) ([]faqsource.Item, error) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func TestService_Items_CachesWithinTTL(t *testing.T) {
	t.Parallel()

	clk := memclock.NewManualClock(time.Unix(1000, 0).UTC())
	src := &countingSource{items: []faqsource.Item{
		{ID: "p1", Question: "When?", Answer: "October.", Order: 1},
		{ID: "p2", Question: "Where?", Answer: "Gainesville.", Order: 2},
	}}
	svc := NewService(src, memfaqcache.NewCache(clk), nil)
	ctx := context.Background()

	items := svc.Items(ctx)
	if len(items) != 2 || items[0].Question != "When?" {
		t.Fatalf("items = %+v", items)
	}
	if src.fetches != 1 {
		t.Fatalf("fetches = %d, want 1", src.fetches)
	}

	// Within the TTL the source is never touched again.
	clk.Advance(time.Minute)
	if got := svc.Items(ctx); len(got) != 2 {
		t.Fatalf("cached items = %+v", got)
	}
	if src.fetches != 1 {
		t.Fatalf("fetches = %d, want 1 (served from cache)", src.fetches)
	}

	// After expiry the source is revalidated.
	clk.Advance(svc.TTL)
	_ = svc.Items(ctx)
	if src.fetches != 2 {
		t.Fatalf("fetches = %d, want 2 after ttl", src.fetches)
	}
}

func TestService_Items_DegradesToEmpty(t *testing.T) {
	t.Parallel()

	clk := memclock.NewManualClock(time.Unix(1000, 0).UTC())
	src := &countingSource{err: errors.New("notion down")}
	svc := NewService(src, memfaqcache.NewCache(clk), nil)

	items := svc.Items(context.Background())
	if items == nil || len(items) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", items)
	}
}

func TestService_Items_NoCacheConfigured(t *testing.T) {
	t.Parallel()

	src := &countingSource{items: []faqsource.Item{{ID: "p1", Question: "Q", Answer: "A"}}}
	svc := NewService(src, nil, nil)
	ctx := context.Background()

	if got := svc.Items(ctx); len(got) != 1 {
		t.Fatalf("items = %+v", got)
	}
	if got := svc.Items(ctx); len(got) != 1 {
		t.Fatalf("items = %+v", got)
	}
	if src.fetches != 2 {
		t.Fatalf("fetches = %d, want 2 without a cache", src.fetches)
	}
}

func TestService_Items_NoSourceConfigured(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, nil, nil)
	items := svc.Items(context.Background())
	if items == nil || len(items) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", items)
	}
}
