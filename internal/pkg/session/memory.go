package session

import (
	"context"
	"sync"
	"time"

	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

type memoryEntry struct {
	payload   Payload
	expiresAt time.Time
}

// MemoryStore is an in-process Store used in tests and single-node development.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

// Get returns the payload for id, or apperrors.ErrNotFound if the session does
// not exist or has expired.
func (s *MemoryStore) Get(_ context.Context, id string) (*Payload, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, apperrors.ErrNotFound
	}

	payload := entry.payload
	return &payload, nil
}

// Put stores the payload under id with the given lifetime.
func (s *MemoryStore) Put(_ context.Context, id string, payload Payload, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = memoryEntry{payload: payload, expiresAt: s.now().Add(ttl)}
	return nil
}

// Destroy removes the session, succeeding even if it was never there.
func (s *MemoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
