package session

import (
	"context"
	"geics-service/internal/app/models"
	"sync"
	"time"
)

// memorySessionStore is the fallback when Redis is unreachable at startup.
// Sessions do not survive a restart, which matches the volatile appointment
// store's lifecycle.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
	}
}

func (s *memorySessionStore) Save(ctx context.Context, sessionID string, session *models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *session
	return nil
}

func (s *memorySessionStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if session.Expired() {
		delete(s.sessions, sessionID)
		return nil, nil
	}
	return &session, nil
}

func (s *memorySessionStore) Destroy(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
