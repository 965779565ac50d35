package promptlab

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryHistoryStore is a session-scoped, in-memory implementation of
// HistoryStore. Entries are lost when the process exits.
type InMemoryHistoryStore struct {
	sessionID string
	entries   []HistoryEntry
	nextID    int64
	mu        sync.RWMutex
}

// NewInMemoryHistoryStore creates a new empty in-memory history store
// with a fresh session ID.
func NewInMemoryHistoryStore() *InMemoryHistoryStore {
	return &InMemoryHistoryStore{
		sessionID: uuid.New().String(),
		nextID:    1,
	}
}

// SessionID returns the store's session identifier.
func (s *InMemoryHistoryStore) SessionID() string {
	return s.sessionID
}

// Append adds a new entry to the log, stamping its ID and session.
func (s *InMemoryHistoryStore) Append(ctx context.Context, entry HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID
	entry.SessionID = s.sessionID
	s.nextID++
	s.entries = append(s.entries, entry)
	return nil
}

// All returns every entry in insertion order.
func (s *InMemoryHistoryStore) All(ctx context.Context) ([]HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]HistoryEntry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

// Filter returns the entries matching the filter, in insertion order.
func (s *InMemoryHistoryStore) Filter(ctx context.Context, filter HistoryFilter) ([]HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []HistoryEntry
	for _, entry := range s.entries {
		if filter.matches(entry) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// Clear removes all entries. The session ID is retained.
func (s *InMemoryHistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}
