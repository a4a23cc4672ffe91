package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chillout-web/internal/domain"
	"chillout-web/internal/kvstore"
)

// Store keeps the per-session state the browser app kept in local
// storage: the last-created order snapshot and the admin credential.
type Store struct {
	kv  kvstore.Store
	ttl time.Duration
}

// NewStore builds a Store over the given key/value backend. Entries
// expire after ttl; a zero ttl keeps them until overwritten.
func NewStore(kv kvstore.Store, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

// SaveSnapshot persists the order snapshot for the session, replacing any
// previous one.
func (s *Store) SaveSnapshot(ctx context.Context, sessionID string, snap domain.OrderSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.kv.Set(ctx, snapshotKey(sessionID), payload, s.ttl)
}

// Snapshot returns the session's stored order snapshot, or ErrNoSnapshot
// when none exists.
func (s *Store) Snapshot(ctx context.Context, sessionID string) (domain.OrderSnapshot, error) {
	payload, err := s.kv.Get(ctx, snapshotKey(sessionID))
	if errors.Is(err, kvstore.ErrMiss) {
		return domain.OrderSnapshot{}, domain.ErrNoSnapshot
	}
	if err != nil {
		return domain.OrderSnapshot{}, err
	}
	var snap domain.OrderSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		// Malformed local state counts as missing, not broken.
		return domain.OrderSnapshot{}, domain.ErrNoSnapshot
	}
	return snap, nil
}

// SaveAdminCredential records a successful admin login for the session.
// The backend re-checks the credential on every admin call; the session
// only carries it so the browser never does.
func (s *Store) SaveAdminCredential(ctx context.Context, sessionID, password string) error {
	return s.kv.Set(ctx, adminKey(sessionID), []byte(password), s.ttl)
}

// AdminCredential returns the stored admin credential, or ErrUnauthorized
// when the session never logged in.
func (s *Store) AdminCredential(ctx context.Context, sessionID string) (string, error) {
	payload, err := s.kv.Get(ctx, adminKey(sessionID))
	if errors.Is(err, kvstore.ErrMiss) {
		return "", domain.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// ClearAdminCredential logs the session out of the admin panel.
func (s *Store) ClearAdminCredential(ctx context.Context, sessionID string) error {
	return s.kv.Delete(ctx, adminKey(sessionID))
}

func snapshotKey(sessionID string) string {
	return "session:" + sessionID + ":order"
}

func adminKey(sessionID string) string {
	return "session:" + sessionID + ":admin"
}
