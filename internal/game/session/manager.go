package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound marks an unknown or revoked session token.
var ErrSessionNotFound = errors.New("session not found")

// Manager tracks every live session, keyed by token and by username.
// A user has at most one live session; logging in again revokes the
// previous token.
type Manager struct {
	mu      sync.RWMutex
	byToken map[string]*Session
	byUser  map[string]*Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{
		byToken: make(map[string]*Session),
		byUser:  make(map[string]*Session),
	}
}

// Start creates a session for the user with a fresh random token,
// revoking any existing session for the same user.
//
// Postcondition: Get with the returned session's token resolves it;
// the user's previous token (if any) no longer resolves.
func (m *Manager) Start(username string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.byUser[username]; ok {
		delete(m.byToken, old.Token)
	}
	s := &Session{Username: username, Token: uuid.NewString()}
	m.byToken[s.Token] = s
	m.byUser[username] = s
	return s
}

// Get resolves a token to its session.
func (m *Manager) Get(token string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byToken[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End revokes a session token.
func (m *Manager) End(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byToken[token]
	if !ok {
		return ErrSessionNotFound
	}
	delete(m.byToken, token)
	delete(m.byUser, s.Username)
	return nil
}

// Each calls fn for every live session. fn must not call back into the
// manager.
func (m *Manager) Each(fn func(s *Session)) {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.byToken))
	for _, s := range m.byToken {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()
	for _, s := range sessions {
		fn(s)
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byToken)
}
