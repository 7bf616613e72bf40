package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Used for tests and local
// dev; state does not survive a restart.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m: make(map[string]Session),
	}
}

func (s *MemoryStore) Load(ctx context.Context, id string) (Session, error) {
	now := time.Now()
	s.mu.RLock()
	sess, ok := s.m[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, ErrNotFound
	}

	if !sess.ExpiresAt.IsZero() && now.After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.m, id)
		s.mu.Unlock()
		return Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *MemoryStore) Save(ctx context.Context, id string, sess Session) error {
	// single map write, the user-before-token ordering is trivially satisfied
	s.mu.Lock()
	s.m[id] = sess
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
	return nil
}
