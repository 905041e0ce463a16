package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/backlog/internal/core/backlog"
	"github.com/colonyops/backlog/internal/service"
	"github.com/colonyops/backlog/internal/tui"
)

// ErrNoTerminal is returned when the editor is started without a terminal.
var ErrNoTerminal = errors.New("the editor needs an interactive terminal")

type CliCmd struct {
	flags *Flags
	app   *service.App

	// flags
	hideDone bool
}

// NewCliCmd creates a new cli command
func NewCliCmd(flags *Flags, app *service.App) *CliCmd {
	return &CliCmd{flags: flags, app: app}
}

// Register adds the cli command to the application
func (cmd *CliCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "cli",
		Aliases:   []string{"edit"},
		Usage:     "Open the interactive backlog editor",
		UsageText: "backlog cli [--hide-done]",
		Description: `Opens a full-screen editor over the current repository's backlog.

Every change is saved as soon as it is made. Pressing enter on an item exits
and prints its text, so the editor can be used as a picker:

  git commit -m "$(backlog cli)"`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "hide-done",
				Usage:       "start with completed items hidden (defaults to editor.hide_done)",
				Destination: &cmd.hideDone,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CliCmd) run(ctx context.Context, c *cli.Command) error {
	repo, err := currentRepo(cmd.flags, cmd.app)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNoTerminal
	}

	opts := tui.Options{
		HideDone: cmd.hideDone || cmd.app.Config.Editor.HideDone,
		Logger:   &log.Logger,
		Copy:     clipboard.WriteAll,
	}

	// Draw on stderr when stdout is captured, e.g. $(backlog cli).
	screen := os.Stdout
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		screen = os.Stderr
		opts.Output = os.Stderr
	}
	if w, h, err := term.GetSize(int(screen.Fd())); err == nil {
		opts.Width, opts.Height = w, h
	}

	var store backlog.Store = cmd.app.Backlogs.Store(repo)
	b, err := store.Load()
	if err != nil {
		// Keep edits in memory so the unreadable file is left untouched.
		log.Error().Err(err).Str("repo", repo.Root).Msg("load backlog for editor")
		store = nil
		b = backlog.Backlog{}
		opts.Warning = fmt.Sprintf("Could not load backlog, changes will not be saved: %v", err)
	}

	text, ok, err := tui.Run(store, b, opts)
	if err != nil {
		return err
	}
	if ok {
		_, _ = fmt.Fprintln(c.Root().Writer, text)
	}
	return nil
}
