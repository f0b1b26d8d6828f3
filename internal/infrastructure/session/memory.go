// Package session provides the default in-memory session store. The
// Postgres-backed store in infrastructure/persistence satisfies the same
// port for deployments that need sessions to survive restarts.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

type entry struct {
	identity  domain.Identity
	expiresAt time.Time
}

// MemoryStore is a concurrency-safe in-process session store. Entries expire
// lazily on read and eagerly via PurgeExpired.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

var _ application.SessionStore = (*MemoryStore)(nil)

func (s *MemoryStore) Put(_ context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = entry{identity: identity, expiresAt: expiresAt}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (domain.Identity, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return domain.Identity{}, false, nil
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return domain.Identity{}, false, nil
	}
	return e.identity, true, nil
}

func (s *MemoryStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

func (s *MemoryStore) PurgeExpired(_ context.Context) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for token, e := range s.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(s.entries, token)
			purged++
		}
	}
	return purged, nil
}
