// Package service holds the backlog operations shared by the CLI commands and
// the editor.
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/backlog/internal/core/backlog"
	"github.com/colonyops/backlog/internal/core/config"
	"github.com/colonyops/backlog/internal/core/git"
	"github.com/colonyops/backlog/internal/store/jsonfile"
)

var (
	// ErrEmptyDescription is returned when an item would have no text.
	ErrEmptyDescription = errors.New("please provide a description")
	// ErrInvalidNumber is returned for item numbers outside 1..len.
	ErrInvalidNumber = errors.New("invalid item number")
)

// Repo identifies a git repository that owns a backlog.
type Repo struct {
	Root string
	Name string
}

// RepoBacklog is one entry of the global listing.
type RepoBacklog struct {
	Repo    Repo
	Backlog backlog.Backlog
	Err     error
}

// BacklogService resolves repositories and applies one-shot edits to their
// backlogs.
type BacklogService struct {
	cfg   *config.Config
	index *jsonfile.IndexStore
	log   zerolog.Logger
	now   func() time.Time
}

// NewBacklogService creates a BacklogService.
func NewBacklogService(cfg *config.Config, index *jsonfile.IndexStore, log zerolog.Logger) *BacklogService {
	return &BacklogService{
		cfg:   cfg,
		index: index,
		log:   log.With().Str("component", "backlog-service").Logger(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Repo resolves the repository that contains dir.
func (s *BacklogService) Repo(dir string) (Repo, error) {
	root, err := git.FindRoot(dir)
	if err != nil {
		return Repo{}, err
	}
	return Repo{Root: root, Name: git.ExtractRepoName(root)}, nil
}

// Store returns the file store for the repository's backlog.
func (s *BacklogService) Store(repo Repo) *jsonfile.BacklogStore {
	return jsonfile.NewBacklogStore(s.cfg.BacklogPath(repo.Root))
}

// Load reads the repository's backlog.
func (s *BacklogService) Load(repo Repo) (backlog.Backlog, error) {
	b, err := s.Store(repo).Load()
	if err != nil {
		return backlog.Backlog{}, fmt.Errorf("load backlog: %w", err)
	}
	return b, nil
}

// Add appends a pending item and registers the repository in the global
// index. Index failures are logged and do not fail the add.
func (s *BacklogService) Add(repo Repo, text string) (backlog.Item, error) {
	text = strings.TrimSpace(backlog.CleanText(text))
	if text == "" {
		return backlog.Item{}, ErrEmptyDescription
	}

	store := s.Store(repo)
	b, err := store.Load()
	if err != nil {
		return backlog.Item{}, fmt.Errorf("load backlog: %w", err)
	}

	item := b.Add(text, s.now())
	if err := store.Save(b); err != nil {
		return backlog.Item{}, fmt.Errorf("save backlog: %w", err)
	}

	if _, err := s.index.Register(repo.Root); err != nil {
		s.log.Warn().Err(err).Str("repo", repo.Root).Msg("register repository in index")
	}

	return item, nil
}

// Get returns item number n (1-based).
func (s *BacklogService) Get(repo Repo, n int) (backlog.Item, error) {
	b, err := s.Load(repo)
	if err != nil {
		return backlog.Item{}, err
	}
	if err := checkNumber(n, b.Len()); err != nil {
		return backlog.Item{}, err
	}
	return b.Items[n-1], nil
}

// Done marks item number n (1-based) as done.
func (s *BacklogService) Done(repo Repo, n int) (backlog.Item, error) {
	return s.mutate(repo, n, func(b *backlog.Backlog, i int) (backlog.Item, error) {
		if err := b.SetDone(i, true); err != nil {
			return backlog.Item{}, err
		}
		return b.Items[i], nil
	})
}

// Remove deletes item number n (1-based).
func (s *BacklogService) Remove(repo Repo, n int) (backlog.Item, error) {
	return s.mutate(repo, n, func(b *backlog.Backlog, i int) (backlog.Item, error) {
		return b.RemoveAt(i)
	})
}

func (s *BacklogService) mutate(repo Repo, n int, fn func(b *backlog.Backlog, i int) (backlog.Item, error)) (backlog.Item, error) {
	store := s.Store(repo)
	b, err := store.Load()
	if err != nil {
		return backlog.Item{}, fmt.Errorf("load backlog: %w", err)
	}
	if err := checkNumber(n, b.Len()); err != nil {
		return backlog.Item{}, err
	}

	item, err := fn(&b, n-1)
	if err != nil {
		return backlog.Item{}, err
	}
	if err := store.Save(b); err != nil {
		return backlog.Item{}, fmt.Errorf("save backlog: %w", err)
	}
	return item, nil
}

// Next returns the first pending item and its 1-based number.
func (s *BacklogService) Next(repo Repo) (backlog.Item, int, bool, error) {
	b, err := s.Load(repo)
	if err != nil {
		return backlog.Item{}, 0, false, err
	}
	item, i, ok := b.NextPending()
	return item, i + 1, ok, nil
}

// ListAll loads every repository in the global index, in registration order.
// When match is non-empty only repositories whose name or root matches the
// glob are returned. Unreadable backlogs are returned with Err set.
func (s *BacklogService) ListAll(match string) ([]RepoBacklog, error) {
	if match != "" && !doublestar.ValidatePattern(match) {
		return nil, fmt.Errorf("invalid match pattern %q", match)
	}

	idx, err := s.index.Load()
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	out := make([]RepoBacklog, 0, len(idx.Repos))
	for _, root := range idx.Repos {
		repo := Repo{Root: root, Name: git.ExtractRepoName(root)}
		if match != "" && !matches(match, repo) {
			continue
		}

		b, err := s.Store(repo).Load()
		if err != nil {
			s.log.Warn().Err(err).Str("repo", root).Msg("skip unreadable backlog")
		}
		out = append(out, RepoBacklog{Repo: repo, Backlog: b, Err: err})
	}
	return out, nil
}

func matches(pattern string, repo Repo) bool {
	for _, candidate := range []string{repo.Name, repo.Root} {
		if ok, _ := doublestar.Match(pattern, candidate); ok {
			return true
		}
	}
	return false
}

func checkNumber(n, length int) error {
	if n < 1 || n > length {
		return fmt.Errorf("%w: %d (backlog has %d items)", ErrInvalidNumber, n, length)
	}
	return nil
}
