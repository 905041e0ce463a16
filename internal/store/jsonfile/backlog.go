package jsonfile

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/backlog/internal/core/backlog"
)

// BacklogStore implements backlog.Store using a JSON file, normally
// <repo>/.todo/backlog.json.
type BacklogStore struct {
	path string
}

var _ backlog.Store = (*BacklogStore)(nil)

// NewBacklogStore creates a store backed by the file at path. The file and its
// parent directories are created on the first Save.
func NewBacklogStore(path string) *BacklogStore {
	return &BacklogStore{path: path}
}

// Path returns the backing file path.
func (s *BacklogStore) Path() string {
	return s.path
}

// Load reads the backlog. A missing file yields an empty backlog.
func (s *BacklogStore) Load() (backlog.Backlog, error) {
	var b backlog.Backlog

	found, err := readJSON(s.path, backlogSchema, &b)
	if err != nil {
		return backlog.Backlog{}, fmt.Errorf("%w: %w", backlog.ErrStoreUnreadable, err)
	}
	b.Clean()

	log.Debug().
		Str("path", s.path).
		Bool("found", found).
		Int("items", b.Len()).
		Msg("backlog loaded")

	return b, nil
}

// Save overwrites the backlog file.
func (s *BacklogStore) Save(b backlog.Backlog) error {
	if b.Items == nil {
		b.Items = []backlog.Item{}
	}

	if err := writeJSON(s.path, b); err != nil {
		return fmt.Errorf("%w: %w", backlog.ErrStoreUnwritable, err)
	}

	log.Debug().
		Str("path", s.path).
		Int("items", b.Len()).
		Msg("backlog saved")

	return nil
}
