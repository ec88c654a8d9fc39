package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/manthan270/hirelite/internal/model"
)

// SessionStore tracks active sessions keyed by session id. Access tokens
// carry the session id as their subject, so deleting a session on logout
// invalidates the token without any blacklist bookkeeping.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]model.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]model.Session),
	}
}

// Put registers or replaces a session.
func (s *SessionStore) Put(session model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
}

// Get returns the session with the given id, if it is still active.
func (s *SessionStore) Get(id uuid.UUID) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	return session, ok
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *SessionStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Count returns the number of active sessions.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
