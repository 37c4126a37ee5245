package faq

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/uf-sase-hacks/registration-api/internal/ports/out/faqcache"
	"github.com/uf-sase-hacks/registration-api/internal/ports/out/faqsource"
)

const cacheKey = "faq:items"

// Service serves FAQ content through a read-through TTL cache. Failures of
// the source or the cache degrade to an empty list; this path never returns
// an error to the caller.
type Service struct {
	src    faqsource.Source // nil when no content source is configured
	cache  faqcache.Cache   // may be nil
	logger *zap.Logger

	// TTL is the fixed external revalidation interval.
	TTL time.Duration
}

func NewService(src faqsource.Source, cache faqcache.Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, cache: cache, logger: logger, TTL: 10 * time.Minute}
}

// Items returns the published FAQ entries, from cache when fresh.
func (s *Service) Items(ctx context.Context) []faqsource.Item {
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
			var items []faqsource.Item
			if json.Unmarshal(raw, &items) == nil {
				return items
			}
		} else if err != nil {
			s.logger.Warn("faq cache read failed", zap.Error(err))
		}
	}

	if s.src == nil {
		return []faqsource.Item{}
	}

	items, err := s.src.Fetch(ctx)
	if err != nil {
		s.logger.Warn("faq source fetch failed", zap.Error(err))
		return []faqsource.Item{}
	}
	if items == nil {
		items = []faqsource.Item{}
	}

	if s.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.cache.Put(ctx, cacheKey, raw, s.TTL); err != nil {
				s.logger.Warn("faq cache write failed", zap.Error(err))
			}
		}
	}
	return items
}
