package menu

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"chillout-web/internal/domain"
	"chillout-web/internal/kvstore"
)

type fetcher interface {
	FetchMenu(ctx context.Context, category, search string) ([]domain.MenuItem, error)
}

// Service serves the menu catalog through a read-through TTL cache. The
// backend stays authoritative; the cache only absorbs repeated browsing
// of the same category/search combination.
type Service struct {
	backend fetcher
	cache   kvstore.Store
	ttl     time.Duration
	logger  *log.Logger
}

// New builds a menu Service. A zero ttl disables caching.
func New(backend fetcher, cache kvstore.Store, ttl time.Duration, logger *log.Logger) *Service {
	return &Service{backend: backend, cache: cache, ttl: ttl, logger: logger}
}

// List returns menu items filtered by category and search term.
func (s *Service) List(ctx context.Context, category, search string) ([]domain.MenuItem, error) {
	key := cacheKey(category, search)

	if s.ttl > 0 {
		if payload, err := s.cache.Get(ctx, key); err == nil {
			var items []domain.MenuItem
			if err := json.Unmarshal(payload, &items); err == nil {
				return items, nil
			}
			// Undecodable cache entry: fall through to a fresh fetch.
			_ = s.cache.Delete(ctx, key)
		}
	}

	items, err := s.backend.FetchMenu(ctx, category, search)
	if err != nil {
		return nil, err
	}

	if s.ttl > 0 {
		if payload, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
				s.logger.Printf("cache menu %q: %v", key, err)
			}
		}
	}
	return items, nil
}

// Invalidate drops the unfiltered listing and every category listing.
// Called after admin catalog writes; an update may move an item between
// categories, so all of them go. Search-filtered entries age out on
// their own TTL.
func (s *Service) Invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, cacheKey("", ""))
	for _, category := range domain.Categories() {
		_ = s.cache.Delete(ctx, cacheKey(string(category), ""))
	}
}

func cacheKey(category, search string) string {
	return "menu:" + category + ":" + search
}
