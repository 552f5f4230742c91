// Package store persists the imported Document set. The core only sees the
// Store interface; the on-disk format is a single JSON blob keyed by an
// application identifier.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spendview-dev/spendview/internal/model"
)

// Store supplies the full Document set at startup and durably stores the
// updated set after each import or delete.
type Store interface {
	Load() ([]model.Document, error)
	Save(docs []model.Document) error
}

// FileStore keeps the Document set as one JSON blob at
// <dir>/<appKey>.json.
type FileStore struct {
	dir    string
	appKey string
}

// blob is the on-disk shape. Versioned so the format can evolve.
type blob struct {
	Version   int              `json:"version"`
	Documents []model.Document `json:"documents"`
}

const blobVersion = 1

// NewFileStore creates a FileStore rooted at dir under the given
// application key.
func NewFileStore(dir, appKey string) *FileStore {
	return &FileStore{dir: dir, appKey: appKey}
}

// Path returns the blob location.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.appKey+".json")
}

// Load reads the Document set. A missing blob is an empty set, not an
// error.
func (s *FileStore) Load() ([]model.Document, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading document store: %w", err)
	}

	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing document store: %w", err)
	}
	return b.Documents, nil
}

// Save writes the full Document set, replacing the previous blob.
func (s *FileStore) Save(docs []model.Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}

	data, err := json.MarshalIndent(blob{Version: blobVersion, Documents: docs}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document store: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot truncate the blob.
	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing document store: %w", err)
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		return fmt.Errorf("replacing document store: %w", err)
	}
	return nil
}
