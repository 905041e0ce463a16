package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/backlog/internal/core/backlog"
)

func TestIndexStore_Register(t *testing.T) {
	t.Parallel()

	store := NewIndexStore(filepath.Join(t.TempDir(), ".backlog", "index.json"))

	changed, err := store.Register("/src/alpha")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = store.Register("/src/beta")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = store.Register("/src/alpha")
	require.NoError(t, err)
	assert.False(t, changed, "duplicate registration is a no-op")

	idx, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"/src/alpha", "/src/beta"}, idx.Repos)
}

func TestIndexStore_LoadMissing(t *testing.T) {
	t.Parallel()

	idx, err := NewIndexStore(filepath.Join(t.TempDir(), "index.json")).Load()
	require.NoError(t, err)
	assert.Empty(t, idx.Repos)
}

func TestIndexStore_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"repos": [1, 2]}`), 0o644))

	_, err := NewIndexStore(path).Load()
	assert.ErrorIs(t, err, backlog.ErrStoreUnreadable)

	_, err = NewIndexStore(path).Register("/src/alpha")
	assert.ErrorIs(t, err, backlog.ErrStoreUnreadable)
}
