package store

import (
	"sync"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/entity"
	"github.com/xavierca1/crm-console/internal/session"
)

// AuthStore holds the in-memory session and keeps it in sync with the
// durable credential store. It implements api.TokenSource, so the
// shared client picks up a new token on the very next request.
type AuthStore struct {
	mu    sync.RWMutex
	token string
	user  *entity.User
	creds *session.Store
}

// NewAuthStore seeds its state synchronously from durable storage.
func NewAuthStore(creds *session.Store) (*AuthStore, error) {
	token, user, err := creds.Read()
	if err != nil {
		return nil, err
	}
	return &AuthStore{token: token, user: user, creds: creds}, nil
}

func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *AuthStore) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *AuthStore) LoggedIn() bool {
	return s.Token() != ""
}

// SetAuth normalizes the token shape, persists token and user, and
// swaps the in-memory state.
func (s *AuthStore) SetAuth(token string, user *entity.User) error {
	final := api.NormalizeToken(token)
	if err := s.creds.Write(final, user); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = final
	s.user = user
	s.mu.Unlock()
	return nil
}

// ClearAuth wipes durable and in-memory state. Safe to call when
// already cleared.
func (s *AuthStore) ClearAuth() error {
	if err := s.creds.Clear(); err != nil {
		return err
	}
	s.Forget()
	return nil
}

// Forget drops only the in-memory copy. The session watcher calls this
// when another process already removed the credential files.
func (s *AuthStore) Forget() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}
