package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/entity"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// Store persists the session under a state directory: one file holding
// the bearer token, one holding the serialized user profile. Absence of
// either file means logged out.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("session: resolve state dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return nil, fmt.Errorf("session: create state dir: %w", err)
	}
	return &Store{dir: abs}, nil
}

func (s *Store) Dir() string { return s.dir }

// Read loads the persisted session. A token that is a JWT whose expiry
// has passed is treated as absent. A corrupt user file yields a nil
// user, not an error, matching "absence means logged out".
func (s *Store) Read() (string, *entity.User, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("session: read token: %w", err)
	}

	token := api.NormalizeToken(string(raw))
	if token == "" || Expired(token, time.Now()) {
		return "", nil, nil
	}

	var user *entity.User
	if data, err := os.ReadFile(filepath.Join(s.dir, userFile)); err == nil {
		var u entity.User
		if json.Unmarshal(data, &u) == nil {
			user = &u
		}
	}
	return token, user, nil
}

func (s *Store) Write(token string, user *entity.User) error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: write token: %w", err)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0o600); err != nil {
		return fmt.Errorf("session: write user: %w", err)
	}
	return nil
}

// Clear removes both credential files. Safe to call when already cleared.
func (s *Store) Clear() error {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("session: remove %s: %w", name, err)
		}
	}
	return nil
}
