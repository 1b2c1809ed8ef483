// Package session persists the login session between invocations.
// The server identifies a client by a session cookie, so the store keeps
// the cookie alongside the displayed user and role.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tally-dev/tally/internal/model"
)

// Cookie is one persisted server cookie.
type Cookie struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// State is everything the client remembers about a login.
type State struct {
	Session model.Session `yaml:"session"`
	Cookies []Cookie      `yaml:"cookies,omitempty"`
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a Store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted state. A missing file is an empty session,
// not an error.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("reading session file: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("parsing session file: %w", err)
	}
	return st, nil
}

// Save writes the state. The file holds a credential, so it is 0600.
func (s *Store) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Logout clears all session state, cookie
// and cached role included.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
