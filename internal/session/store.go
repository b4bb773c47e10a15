// Package session holds the authenticated identity for the lifetime of the
// client process and its bearer token across restarts.
package session

import (
	"context"
	"log"

	"github.com/streetbazaar/storefront/pkg/api"
	"github.com/streetbazaar/storefront/pkg/models"
)

// State is the session lifecycle:
// unauthenticated -> loading -> {authenticated | unauthenticated}
type State int

const (
	StateUnauthenticated State = iota
	StateLoading
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Store owns the current identity. All methods are called from the single
// UI event loop; the store itself does no locking.
type Store struct {
	api    *api.Client
	tokens TokenStore
	state  State
	user   *models.User
}

func New(client *api.Client, tokens TokenStore) *Store {
	return &Store{
		api:    client,
		tokens: tokens,
		state:  StateUnauthenticated,
	}
}

// Restore replays a persisted token on startup. With no stored token the
// session goes straight to unauthenticated. With one, the session loads the
// profile; a failed fetch discards the token rather than erroring out, since
// an expired token is the expected case.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		s.state = StateUnauthenticated
		return nil
	}

	s.state = StateLoading
	s.api.SetToken(token)

	user, err := s.api.Me(ctx)
	if err != nil {
		log.Printf("Discarding stored token: %v", err)
		s.discard()
		return nil
	}

	s.user = user
	s.state = StateAuthenticated
	return nil
}

// Login exchanges credentials for a token and moves straight to
// authenticated, with no separate profile fetch.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(resp.AccessToken); err != nil {
		log.Printf("Warning: failed to persist token: %v", err)
	}
	s.api.SetToken(resp.AccessToken)
	s.user = &resp.User
	s.state = StateAuthenticated
	return nil
}

// Register creates an account without authenticating it
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.api.Register(ctx, req)
}

// Logout synchronously discards the token and identity
func (s *Store) Logout() {
	s.discard()
}

func (s *Store) discard() {
	if err := s.tokens.Clear(); err != nil {
		log.Printf("Warning: failed to clear persisted token: %v", err)
	}
	s.api.ClearToken()
	s.user = nil
	s.state = StateUnauthenticated
}

func (s *Store) State() State {
	return s.state
}

// User returns the authenticated identity, or nil
func (s *Store) User() *models.User {
	return s.user
}

func (s *Store) Authenticated() bool {
	return s.state == StateAuthenticated
}
