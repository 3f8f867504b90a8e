package history

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore implements Store for tests and single-process deployments.
type InMemoryStore struct {
	mu        sync.RWMutex
	nextID    int64
	retention int
	sessions  map[string][]Entry
}

func NewInMemoryStore(retention int) *InMemoryStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &InMemoryStore{
		retention: retention,
		sessions:  make(map[string][]Entry),
	}
}

func (s *InMemoryStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entry.ID = s.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	entries := append(s.sessions[entry.SessionID], entry)
	if over := len(entries) - s.retention; over > 0 {
		entries = append([]Entry(nil), entries[over:]...)
	}
	s.sessions[entry.SessionID] = entries
	return nil
}

func (s *InMemoryStore) List(_ context.Context, sessionID string, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.sessions[sessionID]
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return append([]Entry(nil), entries...), nil
}

func (s *InMemoryStore) Close(context.Context) error { return nil }
