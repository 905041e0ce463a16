// Package git locates the repository that owns a working directory.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotRepository is returned when no enclosing git repository exists.
var ErrNotRepository = errors.New("not in a git repository")

// FindRoot walks up from dir and returns the first directory that contains a
// .git entry. Worktrees and submodules use a .git file, which also counts.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(abs, ".git")); err == nil {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNotRepository
		}
		abs = parent
	}
}

// ExtractRepoName returns the last path element of a repository root,
// e.g. "/home/me/src/backlog" -> "backlog".
func ExtractRepoName(root string) string {
	return filepath.Base(filepath.Clean(root))
}
