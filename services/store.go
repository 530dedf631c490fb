// services/store.go - Persistence collaborators for game snapshots
package services

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cosmicclicker/game"
)

// Store round-trips full game snapshots as structured data, keyed by a
// scope (a local-only key or a user identifier). Load returns (nil, nil)
// when no save exists; a blob that fails to parse is treated the same way,
// never as a fatal error.
type Store interface {
	Load(scope string) (*game.State, error)
	Save(scope string, state *game.State) error
}

// LocalStore keeps one JSON file per scope in a data directory. It backs
// guest play and acts as the fallback target when no cloud session exists.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the data directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(scope string) string {
	// Scopes are user ids or uuid session keys; strip anything that could
	// escape the data directory.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, scope)
	return filepath.Join(s.dir, safe+".json")
}

// Load reads the snapshot for a scope.
func (s *LocalStore) Load(scope string) (*game.State, error) {
	data, err := os.ReadFile(s.path(scope))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state game.State
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Discarding unreadable local save for scope %s: %v", scope, err)
		return nil, nil
	}
	return &state, nil
}

// Save writes the snapshot for a scope.
func (s *LocalStore) Save(scope string, state *game.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(scope), data, 0o644)
}
