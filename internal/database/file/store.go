// Package file stores ledger snapshots as one indented JSON document keyed by
// user id.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/osse101/SlotsBot_Go/internal/domain"
	"github.com/osse101/SlotsBot_Go/internal/logger"
)

// BackendName identifies this store in logs and metrics
const BackendName = "file"

const filePerm = 0o644

// Non-ASCII display names are written as-is, keys sorted for stable diffs
var codec = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Store writes the whole snapshot to a single file, replacing it atomically
type Store struct {
	path string
}

// NewStore creates a file store at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Name implements worker.SnapshotStore
func (s *Store) Name() string {
	return BackendName
}

// Path returns the data file location
func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshot to a temp file in the same directory and renames
// it over the data file, so readers never see a partial write
func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	if snap == nil {
		snap = domain.Snapshot{}
	}
	data, err := codec.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// Load reads the data file. A missing file is an empty snapshot.
func (s *Store) Load(ctx context.Context) (domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Info("No data file found, starting empty", "path", s.path)
		return domain.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	snap := domain.Snapshot{}
	if len(data) == 0 {
		return snap, nil
	}
	if err := codec.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode data file %s: %w", s.path, err)
	}
	return snap, nil
}
