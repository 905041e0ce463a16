package jsonfile

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/backlog/internal/core/backlog"
)

// Index is the root JSON structure of the global index file. It lists every
// repository that has ever had an item added.
type Index struct {
	Repos []string `json:"repos"`
}

// IndexStore reads and writes the global repository index.
type IndexStore struct {
	path string
}

// NewIndexStore creates an index store backed by the file at path.
func NewIndexStore(path string) *IndexStore {
	return &IndexStore{path: path}
}

// Load returns the index. A missing file yields an empty index.
func (s *IndexStore) Load() (Index, error) {
	var idx Index
	if _, err := readJSON(s.path, indexSchema, &idx); err != nil {
		return Index{}, fmt.Errorf("%w: %w", backlog.ErrStoreUnreadable, err)
	}
	return idx, nil
}

// Register adds repoRoot to the index if it is not present yet.
// Reports whether the index changed.
func (s *IndexStore) Register(repoRoot string) (bool, error) {
	idx, err := s.Load()
	if err != nil {
		return false, err
	}

	if slices.Contains(idx.Repos, repoRoot) {
		return false, nil
	}

	idx.Repos = append(idx.Repos, repoRoot)
	if err := writeJSON(s.path, idx); err != nil {
		return false, fmt.Errorf("%w: %w", backlog.ErrStoreUnwritable, err)
	}

	log.Debug().Str("repo", repoRoot).Msg("repository registered in index")
	return true, nil
}
