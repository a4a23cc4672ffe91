package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"chillout-web/internal/domain"
	"chillout-web/internal/kvstore"
)

type remoteClient interface {
	FetchCart(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, sessionID, menuItemID string, quantity int) error
	RemoveCartItem(ctx context.Context, sessionID, menuItemID string) error
}

// Store is the single source of truth for each session's cart mirror.
// Contents are only ever replaced wholesale from a successful remote
// fetch; the store never increments counts locally. The mirror lives in
// the key/value store under the session TTL and expires with it.
type Store struct {
	client remoteClient
	kv     kvstore.Store
	ttl    time.Duration
	logger *log.Logger
}

// NewStore builds a Store over the backend client and key/value backend.
func NewStore(client remoteClient, kv kvstore.Store, ttl time.Duration, logger *log.Logger) *Store {
	return &Store{client: client, kv: kv, ttl: ttl, logger: logger}
}

// Refresh fetches the remote cart and replaces the session's mirror.
func (s *Store) Refresh(ctx context.Context, sessionID string) (domain.CartState, error) {
	items, err := s.client.FetchCart(ctx, sessionID)
	if err != nil {
		return domain.CartState{}, err
	}
	state := domain.NewCartState(sessionID, items)

	if payload, err := json.Marshal(items); err == nil {
		if err := s.kv.Set(ctx, mirrorKey(sessionID), payload, s.ttl); err != nil {
			s.logger.Printf("store cart mirror for %s: %v", sessionID, err)
		}
	}
	return state, nil
}

// Get returns a fresh view of the session's cart. A failed fetch degrades
// to the last successful fetch, or an empty cart when the mirror has
// expired, and is logged rather than surfaced.
func (s *Store) Get(ctx context.Context, sessionID string) domain.CartState {
	state, err := s.Refresh(ctx, sessionID)
	if err == nil {
		return state
	}
	s.logger.Printf("fetch cart for %s: %v", sessionID, err)

	payload, err := s.kv.Get(ctx, mirrorKey(sessionID))
	if errors.Is(err, kvstore.ErrMiss) {
		return domain.NewCartState(sessionID, nil)
	}
	if err != nil {
		s.logger.Printf("read cart mirror for %s: %v", sessionID, err)
		return domain.NewCartState(sessionID, nil)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return domain.NewCartState(sessionID, nil)
	}
	return domain.NewCartState(sessionID, items)
}

// Add puts one unit of a menu item into the remote cart, then refetches.
// The backend merges quantity when the item is already present. The
// operation is complete only after the refetch succeeds.
func (s *Store) Add(ctx context.Context, sessionID, menuItemID string) (domain.CartState, error) {
	if err := s.client.AddCartItem(ctx, sessionID, menuItemID, 1); err != nil {
		return domain.CartState{}, err
	}
	return s.Refresh(ctx, sessionID)
}

// Remove deletes a menu item from the remote cart, then refetches.
func (s *Store) Remove(ctx context.Context, sessionID, menuItemID string) (domain.CartState, error) {
	if err := s.client.RemoveCartItem(ctx, sessionID, menuItemID); err != nil {
		return domain.CartState{}, err
	}
	return s.Refresh(ctx, sessionID)
}

func mirrorKey(sessionID string) string {
	return "cart:" + sessionID
}
