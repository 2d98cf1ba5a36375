package session

import (
	"context"
	"sync"
	"time"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
)

// MemoryStore is the single-process default. Entries expire after the
// configured TTL and are reaped lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	table     domain.ScheduleTable
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (domain.ScheduleTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[sessionID]
	if !exists {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil, ErrNotFound
	}

	return copyTable(entry.table), nil
}

func (s *MemoryStore) Put(_ context.Context, sessionID string, table domain.ScheduleTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		table:     copyTable(table),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}
