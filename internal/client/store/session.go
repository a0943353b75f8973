// Package store holds the single active session of the VideoGenius CLI.
//
// SessionStore is shared by reference between the auth and generation
// services. It mutates only by replacing the whole credential/profile pair,
// writing to persistence first and swapping the in-memory copy after the
// write succeeded, so readers never see a torn pair. Last writer wins.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/videogenius/internal/client/models"
	"github.com/dmitrijs2005/videogenius/internal/client/repositories/session"
)

// ErrNoSession is returned by ReplaceProfile when nobody is logged in.
var ErrNoSession = errors.New("no active session")

type SessionStore struct {
	mu   sync.RWMutex
	cur  models.Session
	repo session.Repository
}

// NewSessionStore returns an empty store persisting through repo.
func NewSessionStore(repo session.Repository) *SessionStore {
	return &SessionStore{repo: repo}
}

// Load replaces the in-memory session with the persisted one and reports
// whether a session was found.
func (s *SessionStore) Load(ctx context.Context) (bool, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if stored == nil {
		s.cur = models.Session{}
		return false, nil
	}
	s.cur = *stored
	return true, nil
}

// Current returns a copy of the active session.
func (s *SessionStore) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur, !s.cur.IsZero()
}

// Credential returns the active token.
func (s *SessionStore) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token, s.cur.Token != ""
}

// Replace installs next as the active session.
func (s *SessionStore) Replace(ctx context.Context, next models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Put(ctx, next); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.cur = next
	return nil
}

// ReplaceProfile installs user next to the current credential, provided the
// credential is still token. A token that is no longer the active one is
// ignored.
func (s *SessionStore) ReplaceProfile(ctx context.Context, token string, user models.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur.IsZero() {
		return false, ErrNoSession
	}
	if s.cur.Token != token {
		return false, nil
	}

	next := models.Session{Token: s.cur.Token, User: user}
	if err := s.repo.Put(ctx, next); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}
	s.cur = next
	return true, nil
}

// Clear forgets the active session. The in-memory copy is dropped even when
// persistence fails, and the persistence error is returned.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = models.Session{}
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
