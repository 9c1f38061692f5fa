package storage

import (
	"context"
	"errors"
	"sync"
)

// MemoryStore is a process-local [Store]. It exists for tests and for callers
// that want session semantics without a durable footprint.
type MemoryStore struct {
	mu  sync.Mutex
	rec *Record
}

// NewMemoryStore returns an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements [Store].
func (s *MemoryStore) Load(_ context.Context) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return nil, ErrNotFound
	}
	copied := *s.rec
	if s.rec.User != nil {
		user := *s.rec.User
		copied.User = &user
	}
	return &copied, nil
}

// Save implements [Store].
func (s *MemoryStore) Save(_ context.Context, rec *Record) error {
	if rec == nil || rec.Token == "" {
		return errors.New("refusing to save empty session record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *rec
	if rec.User != nil {
		user := *rec.User
		copied.User = &user
	}
	s.rec = &copied
	return nil
}

// Delete implements [Store].
func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
	return nil
}
