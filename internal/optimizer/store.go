package optimizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/melisasvr/dayflow/internal/focus"
	"github.com/melisasvr/dayflow/internal/task"
)

// ErrNoSnapshot is returned by Load when no snapshot file exists on disk.
// Callers treat it as empty state.
var ErrNoSnapshot = errors.New("no saved state")

// Snapshot is the persisted per-user state document. Timestamps serialize as
// RFC 3339 and round-trip exactly.
type Snapshot struct {
	Tasks         []task.Task      `json:"tasks"`
	CurrentEnergy int              `json:"current_energy"`
	Focus         *focus.Estimator `json:"focus"`
}

// SnapshotStore persists a Snapshot. Saves are full overwrites, last write
// wins.
type SnapshotStore interface {
	Save(s *Snapshot) error
	Load() (*Snapshot, error) // returns ErrNoSnapshot if none exists
}

// diskStore is the concrete SnapshotStore backed by a single JSON file.
type diskStore struct {
	path string // full path to state.json
}

// StatePath resolves the snapshot file path. An empty dir selects the XDG
// data directory: $XDG_DATA_HOME/dayflow/state.json or
// ~/.local/share/dayflow/state.json.
func StatePath(dir string) (string, error) {
	if dir == "" {
		base := os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".local", "share")
		}
		dir = filepath.Join(base, "dayflow")
	}
	return filepath.Join(dir, "state.json"), nil
}

// NewSnapshotStore returns a SnapshotStore writing to dir (or the XDG data
// directory when dir is empty), creating the directory if needed.
func NewSnapshotStore(dir string) (SnapshotStore, error) {
	path, err := StatePath(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &diskStore{path: path}, nil
}

// Save marshals s to JSON and writes it atomically via a temp file + os.Rename.
func (d *diskStore) Save(s *Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}

	// Write to a temp file in the same directory so os.Rename is atomic.
	tmp, err := os.CreateTemp(filepath.Dir(d.path), "state-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error path.
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist state: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}

	if err = os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// Load reads and unmarshals the snapshot file.
// Returns ErrNoSnapshot if the file does not exist.
func (d *diskStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}
	return &s, nil
}
