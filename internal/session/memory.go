package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	binding   Binding
	expiresAt time.Time
}

// MemoryStore is a map-backed Store with lazy TTL eviction. It backs tests and
// single-process deployments without Redis.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore builds an in-memory store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create stores a new binding under a fresh session id.
func (s *MemoryStore) Create(_ context.Context, binding Binding) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{binding: binding, expiresAt: s.now().Add(s.ttl)}
	return id, nil
}

// Get returns the binding for id, or ErrNotFound when absent or expired.
func (s *MemoryStore) Get(_ context.Context, id string) (*Binding, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	binding := entry.binding
	return &binding, nil
}

// Delete removes the binding. Deleting an absent id is not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
