package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/backlog/internal/core/config"
	"github.com/colonyops/backlog/internal/core/git"
	"github.com/colonyops/backlog/internal/service"
)

type harness struct {
	flags  *Flags
	app    *service.App
	stdout bytes.Buffer
	stderr bytes.Buffer

	// confirm answers the remove prompt; nil disables prompting.
	confirm func(title, description string) (bool, error)
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	h := &harness{
		flags: &Flags{
			ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
			DataDir:    cfg.DataDir,
			Config:     &cfg,
		},
		app: service.NewApp(&cfg, zerolog.Nop()),
	}
	h.flags.WorkDir = h.newRepo(t, "project")
	return h
}

// newRepo creates a directory containing a .git entry.
func (h *harness) newRepo(t *testing.T, name string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	return root
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()

	root := &cli.Command{
		Name:           "backlog",
		Writer:         &h.stdout,
		ErrWriter:      &h.stderr,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	remove := NewRemoveCmd(h.flags, h.app)
	remove.confirm = h.confirm

	root = NewAddCmd(h.flags, h.app).Register(root)
	root = NewListCmd(h.flags, h.app).Register(root)
	root = NewDoneCmd(h.flags, h.app).Register(root)
	root = remove.Register(root)
	root = NewNextCmd(h.flags, h.app).Register(root)
	root = NewConfigValidateCmd(h.flags).Register(root)
	root.Action = NewShowCmd(h.flags, h.app).Run

	return root.Run(context.Background(), append([]string{"backlog"}, args...))
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	require.NoError(t, h.run(args...))
	return h.stdout.String()
}

func TestAdd(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "Added: buy milk\n", h.mustRun(t, "add", "buy", "milk"))

	err := h.run("add")
	require.ErrorIs(t, err, service.ErrEmptyDescription)
	assert.Empty(t, h.stdout.String())
}

func TestCommands_NotInRepository(t *testing.T) {
	h := newHarness(t)
	h.flags.WorkDir = t.TempDir()

	for _, args := range [][]string{
		{"add", "x"},
		{"list"},
		{"done", "1"},
		{"remove", "1"},
		{"next"},
	} {
		t.Run(args[0], func(t *testing.T) {
			assert.ErrorIs(t, h.run(args...), git.ErrNotRepository)
		})
	}

	err := h.run()
	require.ErrorIs(t, err, git.ErrNotRepository)
	assert.Contains(t, err.Error(), "backlog --help")
}

func TestList(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "Backlog is empty.\n", h.mustRun(t, "list"))

	h.mustRun(t, "add", "one")
	h.mustRun(t, "add", "two")
	h.mustRun(t, "done", "1")

	assert.Equal(t, "\nBacklog:\n--------\n1. [x] one\n2. [ ] two\n\n", h.mustRun(t, "list"))
	assert.Equal(t, h.mustRun(t, "list"), h.mustRun(t, "ls"))
}

func TestList_JSON(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "add", "one")
	h.mustRun(t, "add", "two")
	h.mustRun(t, "done", "2")

	lines := strings.Split(strings.TrimSpace(h.mustRun(t, "list", "--json")), "\n")
	require.Len(t, lines, 2)

	var got itemInfo
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, 2, got.Number)
	assert.Equal(t, "two", got.Text)
	assert.True(t, got.Done)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestList_MatchRequiresAll(t *testing.T) {
	h := newHarness(t)
	assert.ErrorContains(t, h.run("list", "--match", "x*"), "--match requires --all")
}

func TestListAll(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "No backlogs found.\n", h.mustRun(t, "list", "--all"))

	first := h.flags.WorkDir
	h.mustRun(t, "add", "a1")
	h.mustRun(t, "add", "a2")
	h.mustRun(t, "done", "1")

	second := h.newRepo(t, "other")
	h.flags.WorkDir = second
	h.mustRun(t, "add", "b1")

	cleared := h.newRepo(t, "cleared")
	h.flags.WorkDir = cleared
	h.mustRun(t, "add", "c1")
	h.mustRun(t, "done", "1")

	want := "\n" + first + "\n" + strings.Repeat("-", len(first)) + "\n" +
		"  1. [x] a1\n" +
		"  2. [ ] a2\n" +
		"\n" + second + "\n" + strings.Repeat("-", len(second)) + "\n" +
		"  1. [ ] b1\n" +
		"\n"
	assert.Equal(t, want, h.mustRun(t, "list", "--all"))

	out := h.mustRun(t, "list", "--all", "--match", "oth*")
	assert.Contains(t, out, second)
	assert.NotContains(t, out, first)
}

func TestListAll_UnreadableBacklog(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "add", "a1")

	require.NoError(t, os.WriteFile(h.flags.Config.BacklogPath(h.flags.WorkDir), []byte("not json"), 0o644))

	out := h.mustRun(t, "list", "--all")
	assert.Equal(t, "\n", out)
	assert.Contains(t, h.stderr.String(), "skipping "+h.flags.WorkDir)
}

func TestListAll_JSON(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "add", "a1")

	var got repoInfo
	require.NoError(t, json.Unmarshal([]byte(h.mustRun(t, "list", "--all", "--json")), &got))
	assert.Equal(t, h.flags.WorkDir, got.Repo)
	assert.Equal(t, "project", got.Name)
	assert.Equal(t, 1, got.Pending)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "a1", got.Items[0].Text)
	assert.Empty(t, got.Error)
}

func TestDone(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "add", "one")

	assert.Equal(t, "Marked as done: one\n", h.mustRun(t, "done", "1"))

	for _, arg := range []string{"0", "2", "abc"} {
		assert.ErrorIs(t, h.run("done", arg), service.ErrInvalidNumber, arg)
	}
	assert.ErrorIs(t, h.run("done"), service.ErrInvalidNumber)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		answer      bool
		confirmOff  bool
		wantRemoved bool
		wantAsked   bool
	}{
		{name: "confirmed", args: []string{"remove", "1"}, answer: true, wantRemoved: true, wantAsked: true},
		{name: "declined", args: []string{"remove", "1"}, answer: false, wantAsked: true},
		{name: "yes flag", args: []string{"remove", "--yes", "1"}, wantRemoved: true},
		{name: "confirm disabled", args: []string{"rm", "1"}, confirmOff: true, wantRemoved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.mustRun(t, "add", "one")
			h.flags.Config.Remove.Confirm = !tt.confirmOff

			asked := false
			h.confirm = func(title, description string) (bool, error) {
				asked = true
				assert.Equal(t, "Remove item 1?", title)
				assert.Equal(t, "one", description)
				return tt.answer, nil
			}

			out := h.mustRun(t, tt.args...)
			assert.Equal(t, tt.wantAsked, asked)

			if tt.wantRemoved {
				assert.Equal(t, "Removed: one\n", out)
				assert.Equal(t, "Backlog is empty.\n", h.mustRun(t, "list"))
				return
			}
			assert.Empty(t, out)
			assert.Equal(t, "Cancelled\n", h.stderr.String())
			assert.Contains(t, h.mustRun(t, "list"), "1. [ ] one")
		})
	}
}

func TestRemove_InvalidNumberSkipsPrompt(t *testing.T) {
	h := newHarness(t)
	h.confirm = func(string, string) (bool, error) {
		t.Fatal("prompt shown for an invalid item")
		return false, nil
	}

	assert.ErrorIs(t, h.run("remove", "3"), service.ErrInvalidNumber)
}

func TestNext(t *testing.T) {
	h := newHarness(t)

	assert.Empty(t, h.mustRun(t, "next"))
	assert.Equal(t, "All done! Backlog is clear.\n", h.stderr.String())

	h.mustRun(t, "add", "one")
	h.mustRun(t, "add", "two")
	h.mustRun(t, "done", "1")

	assert.Equal(t, "two\n", h.mustRun(t, "next"))
	assert.Empty(t, h.stderr.String())
}

func TestShow(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "Backlog is empty. Use 'backlog add <description>' to add items.\n", h.mustRun(t))

	h.mustRun(t, "add", "one")
	h.mustRun(t, "add", "two")
	h.mustRun(t, "add", "three")
	h.mustRun(t, "done", "2")

	assert.Equal(t, "\n2 item(s) in backlog:\n1. [ ] one\n3. [ ] three\n\n", h.mustRun(t))

	h.mustRun(t, "done", "1")
	h.mustRun(t, "done", "3")
	assert.Equal(t, "All done! Backlog is clear.\n", h.mustRun(t))
}

func TestConfigValidate(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun(t, "config", "validate")
	assert.Contains(t, out, "Configuration is valid")

	h.flags.Config.Colors = map[string]string{"primary": "blue"}
	err := h.run("config", "validate")
	require.Error(t, err)
	assert.Contains(t, h.stdout.String(), "colors.primary")
	assert.Contains(t, h.stdout.String(), "1 error(s) found")
}

func TestConfigValidate_JSON(t *testing.T) {
	h := newHarness(t)
	h.flags.Config.Colors = map[string]string{"muted": "#zz"}

	require.Error(t, h.run("config", "validate", "--format", "json"))

	var got struct {
		Valid  bool              `json:"valid"`
		Errors []validationIssue `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &got))
	assert.False(t, got.Valid)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "colors.muted", got.Errors[0].Field)
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "backlog", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, ".backlog", filepath.Base(DefaultDataDir()))
}
