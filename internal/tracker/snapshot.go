package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/adventures/internal/models"
)

// SnapshotStore persists the full in-memory state as a single JSON file at
// a well-known path, shaped identically to the GET /adventures response
// (category to list of items). It is the local stand-in for the remote
// store when the backend is unreachable.
type SnapshotStore struct {
	path string
	mu   sync.Mutex
}

// NewSnapshotStore returns a store writing to the given file path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Load reads the snapshot. A missing file is not an error: it simply means
// no snapshot exists yet (ok is false).
func (s *SnapshotStore) Load() (map[string][]models.Adventure, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap map[string][]models.Adventure
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return snap, true, nil
}

// Save overwrites the snapshot with the given state. The write goes through
// a temp file and a rename so a crash never leaves a half-written snapshot.
func (s *SnapshotStore) Save(snap map[string][]models.Adventure) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".adventures-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
