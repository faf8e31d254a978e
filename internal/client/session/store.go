// Package session holds the dashboard's authentication state: the token
// store and the gate deciding which routes need a token.
//
// The store is passed explicitly to everything that needs it (the API client
// attaches the token from it, the gate reads it); there is no package-level
// token.
package session

import (
	"context"
	"sync"
)

// Session is what a successful login leaves behind. Email is informational
// (shown in prompts); only Token matters for authentication.
type Session struct {
	Token string
	Email string
}

// Authenticated reports whether the session carries a non-empty token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store keeps one Session.
//
//   - Init prepares the store at startup and normalises leftover state.
//   - Load returns the current session; the zero Session when absent.
//   - Save replaces the session (set token).
//   - Clear removes it (remove token). Clearing an empty store is not an error.
type Store interface {
	Init(ctx context.Context) error
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the session in process memory. The web dashboard holds
// one per browser session.
type MemoryStore struct {
	mu sync.RWMutex
	s  Session
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Init(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s.Token == "" {
		m.s = Session{}
	}
	return nil
}

func (m *MemoryStore) Load(context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s, nil
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Session{}
	return nil
}
