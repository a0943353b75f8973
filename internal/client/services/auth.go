// Package services contains application services for the VideoGenius client.
// This file defines the session manager: login, register, logout, token
// revalidation and balance lookup on top of the shared SessionStore.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/videogenius/internal/client/client"
	"github.com/dmitrijs2005/videogenius/internal/client/models"
	"github.com/dmitrijs2005/videogenius/internal/client/store"
	"github.com/dmitrijs2005/videogenius/internal/logging"
)

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Register: create an account; does not log in.
//   - Login: authenticate and replace the stored session as a whole.
//   - Revalidate: verify a token and refresh the stored profile; never clears.
//   - Logout: forget the stored session; no network, idempotent.
//   - CurrentCredential / Profile: pure reads.
//   - Points: fetch the server-side balance for display.
//   - Restore: load the persisted session at startup.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Revalidate(ctx context.Context, credential string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentCredential() (string, bool)
	Profile() (models.User, bool)
	Points(ctx context.Context) (int64, error)
	Restore(ctx context.Context) (string, bool, error)
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  *store.SessionStore
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the API client and the
// shared session store.
func NewAuthService(c client.Client, s *store.SessionStore, log logging.Logger) AuthService {
	return &authService{client: c, store: s, log: log.With("component", "auth")}
}

func (a *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	user, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		a.log.Warn(ctx, "registration failed", "email", email, "error", err)
		return nil, err
	}
	a.log.Info(ctx, "registered", "email", email)
	return user, nil
}

// Login replaces the stored session only after the server accepted the
// credentials and the new pair was persisted; on any failure the previous
// session stays in place.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	sess, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "email", email, "error", err)
		return nil, err
	}

	if err := a.store.Replace(ctx, *sess); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.log.Info(ctx, "logged in", "email", sess.User.Email, "points", sess.User.Points)
	return sess, nil
}

// Revalidate verifies credential. When credential is the stored one, the
// stored profile is refreshed; the credential itself is never rotated. On
// failure nothing is cleared, that is the caller's decision. Every failure
// to verify, including an empty credential, is reported as ErrAuth or, when
// the server was not reached, ErrNetwork.
func (a *authService) Revalidate(ctx context.Context, credential string) (*models.User, error) {
	if credential == "" {
		return nil, client.AuthFailed("no credential to verify")
	}

	user, err := a.client.VerifyToken(ctx, credential)
	if err != nil {
		a.log.Warn(ctx, "token verification failed", "error", err)
		return nil, err
	}

	replaced, err := a.store.ReplaceProfile(ctx, credential, *user)
	if err != nil && !errors.Is(err, store.ErrNoSession) {
		return nil, fmt.Errorf("revalidate: %w", err)
	}
	if replaced {
		a.log.Info(ctx, "session revalidated", "email", user.Email, "points", user.Points)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) CurrentCredential() (string, bool) {
	return a.store.Credential()
}

func (a *authService) Profile() (models.User, bool) {
	cur, ok := a.store.Current()
	return cur.User, ok
}

// Points asks the server for the current balance. The value is for display
// only and is not written into the stored profile.
func (a *authService) Points(ctx context.Context) (int64, error) {
	token, ok := a.store.Credential()
	if !ok {
		return 0, client.Unauthorized("log in to see your points")
	}
	return a.client.Points(ctx, token)
}

// Restore loads the persisted session and returns its credential. The
// caller should Revalidate it before treating the session as live.
func (a *authService) Restore(ctx context.Context) (string, bool, error) {
	found, err := a.store.Load(ctx)
	if err != nil || !found {
		return "", false, err
	}
	token, ok := a.store.Credential()
	return token, ok, nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
