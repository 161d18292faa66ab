// Package jsonfile persists each collection as a single pretty-printed JSON
// document on disk. Writes replace the whole file; last write wins. Reads
// fail open: a missing or unparseable file yields the collection's empty
// default rather than an error.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	dir    string
	logger *slog.Logger

	mu sync.Mutex
}

func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// read unmarshals the named document into out and reports whether it
// succeeded. A missing file is a normal first run and is not logged; a file
// that exists but will not parse is logged as corruption. Either way the
// caller falls back to its empty default.
func (s *Store) read(name string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Error("failed to read collection file", "file", name, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Error("collection file is corrupt, falling back to empty document", "file", name, "error", err)
		return false
	}
	return true
}

// write serializes doc and replaces the file's entire contents. There is no
// atomic rename and no cross-process locking; concurrent writers race.
func (s *Store) write(name string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
