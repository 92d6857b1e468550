package suggeststore

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vedicworks/muhurat-api/internal/domain/muhurat"
)

type cachedResponse struct {
	payload   muhurat.Response
	expiresAt time.Time
}

// MemoryStore is an in-memory suggestion cache for tests and single-node
// deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cachedResponse
	clock   clockwork.Clock
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]cachedResponse),
		clock:   clock,
	}
}

// GetSuggestion implements muhurat.Store.
func (s *MemoryStore) GetSuggestion(_ context.Context, key string) (muhurat.Response, bool, error) {
	if key == "" {
		return muhurat.Response{}, false, nil
	}
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return muhurat.Response{}, false, nil
	}
	if !entry.expiresAt.IsZero() && entry.expiresAt.Before(s.clock.Now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return muhurat.Response{}, false, nil
	}
	return entry.payload, true, nil
}

// SaveSuggestion caches the response with optional TTL.
func (s *MemoryStore) SaveSuggestion(_ context.Context, key string, resp muhurat.Response, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = s.clock.Now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = cachedResponse{payload: resp, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

var _ muhurat.Store = (*MemoryStore)(nil)
