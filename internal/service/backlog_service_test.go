package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/backlog/internal/core/backlog"
	"github.com/colonyops/backlog/internal/core/config"
	"github.com/colonyops/backlog/internal/core/git"
)

func newTestService(t *testing.T) *BacklogService {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	app := NewApp(&cfg, zerolog.Nop())
	app.Backlogs.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return app.Backlogs
}

// newRepo creates a directory with a .git entry and returns it as a Repo.
func newRepo(t *testing.T, svc *BacklogService, name string) Repo {
	t.Helper()

	root := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	repo, err := svc.Repo(root)
	require.NoError(t, err)
	return repo
}

func TestBacklogService_Repo(t *testing.T) {
	svc := newTestService(t)
	repo := newRepo(t, svc, "alpha")

	nested := filepath.Join(repo.Root, "cmd", "tool")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := svc.Repo(nested)
	require.NoError(t, err)
	assert.Equal(t, repo, got)
	assert.Equal(t, "alpha", got.Name)

	_, err = svc.Repo(t.TempDir())
	assert.ErrorIs(t, err, git.ErrNotRepository)
}

func TestBacklogService_Add(t *testing.T) {
	svc := newTestService(t)
	repo := newRepo(t, svc, "alpha")

	item, err := svc.Add(repo, "  buy milk ")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", item.Text)
	assert.False(t, item.Done)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), item.CreatedAt)

	_, err = os.Stat(filepath.Join(repo.Root, ".todo", "backlog.json"))
	require.NoError(t, err)

	idx, err := svc.index.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{repo.Root}, idx.Repos)

	_, err = svc.Add(repo, "   ")
	assert.ErrorIs(t, err, ErrEmptyDescription)

	item, err = svc.Add(repo, "line one\nline two\n")
	require.NoError(t, err)
	assert.Equal(t, "line one line two", item.Text)

	_, err = svc.Add(repo, "\t\r\n")
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestBacklogService_DoneAndRemove(t *testing.T) {
	svc := newTestService(t)
	repo := newRepo(t, svc, "alpha")

	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.Add(repo, text)
		require.NoError(t, err)
	}

	item, err := svc.Done(repo, 2)
	require.NoError(t, err)
	assert.Equal(t, "two", item.Text)
	assert.True(t, item.Done)

	item, err = svc.Remove(repo, 1)
	require.NoError(t, err)
	assert.Equal(t, "one", item.Text)

	b, err := svc.Load(repo)
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())
	assert.Equal(t, "two", b.Items[0].Text)
	assert.True(t, b.Items[0].Done)

	for _, n := range []int{0, -1, 3} {
		_, err = svc.Done(repo, n)
		assert.ErrorIs(t, err, ErrInvalidNumber)

		_, err = svc.Remove(repo, n)
		assert.ErrorIs(t, err, ErrInvalidNumber)

		_, err = svc.Get(repo, n)
		assert.ErrorIs(t, err, ErrInvalidNumber)
	}
}

func TestBacklogService_Next(t *testing.T) {
	svc := newTestService(t)
	repo := newRepo(t, svc, "alpha")

	_, _, ok, err := svc.Next(repo)
	require.NoError(t, err)
	assert.False(t, ok)

	for _, text := range []string{"one", "two"} {
		_, err := svc.Add(repo, text)
		require.NoError(t, err)
	}
	_, err = svc.Done(repo, 1)
	require.NoError(t, err)

	item, n, ok, err := svc.Next(repo)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", item.Text)
	assert.Equal(t, 2, n)
}

func TestBacklogService_ListAll(t *testing.T) {
	svc := newTestService(t)
	alpha := newRepo(t, svc, "alpha")
	beta := newRepo(t, svc, "beta")
	broken := newRepo(t, svc, "broken")

	_, err := svc.Add(alpha, "a1")
	require.NoError(t, err)
	_, err = svc.Add(beta, "b1")
	require.NoError(t, err)
	_, err = svc.Add(broken, "c1")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(svc.cfg.BacklogPath(broken.Root), []byte("{oops"), 0o644))

	all, err := svc.ListAll("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, alpha, all[0].Repo)
	assert.Equal(t, "a1", all[0].Backlog.Items[0].Text)
	assert.NoError(t, all[1].Err)
	assert.ErrorIs(t, all[2].Err, backlog.ErrStoreUnreadable)

	matched, err := svc.ListAll("b*")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "beta", matched[0].Repo.Name)
	assert.Equal(t, "broken", matched[1].Repo.Name)

	matched, err = svc.ListAll("al*")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, alpha, matched[0].Repo)

	_, err = svc.ListAll("[")
	assert.Error(t, err)
}

func TestBacklogService_CustomBacklogFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.BacklogFile = "TODO.json"
	svc := NewApp(&cfg, zerolog.Nop()).Backlogs

	repo := newRepo(t, svc, "alpha")
	_, err := svc.Add(repo, "x")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(repo.Root, "TODO.json"))
	assert.NoError(t, err)
}
