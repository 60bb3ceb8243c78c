package memory

import (
	"errors"
	"sync"

	"stayview/internal/app/sessions"
)

// ErrSessionNotFound is returned when a widget session id is unknown.
var ErrSessionNotFound = errors.New("memory: session not found")

// SessionStore keeps widget sessions in memory.
type SessionStore struct {
	mu    sync.RWMutex
	items map[string]*sessions.Session
}

// NewSessionStore builds an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{items: make(map[string]*sessions.Session)}
}

// Put stores a session under its id.
func (s *SessionStore) Put(session *sessions.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[session.ID] = session
}

// Get returns a session or ErrSessionNotFound.
func (s *SessionStore) Get(id string) (*sessions.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.items[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

var _ sessions.Store = (*SessionStore)(nil)
