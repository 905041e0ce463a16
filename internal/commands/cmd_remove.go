package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/backlog/internal/service"
)

type RemoveCmd struct {
	flags *Flags
	app   *service.App

	// flags
	yes bool

	// confirm asks the user before deleting; nil means never ask.
	confirm func(title, description string) (bool, error)
}

// NewRemoveCmd creates a new remove command
func NewRemoveCmd(flags *Flags, app *service.App) *RemoveCmd {
	return &RemoveCmd{flags: flags, app: app, confirm: confirmOnTTY}
}

// Register adds the remove command to the application
func (cmd *RemoveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Remove an item from the backlog",
		UsageText: "backlog remove [--yes] <number>",
		Description: `Deletes an item from the current repository's backlog.

When running in a terminal and remove.confirm is enabled in the config, a
confirmation prompt is shown first. Use --yes to skip it.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RemoveCmd) run(ctx context.Context, c *cli.Command) error {
	repo, err := currentRepo(cmd.flags, cmd.app)
	if err != nil {
		return err
	}

	n, err := itemNumber(c)
	if err != nil {
		return err
	}

	if cmd.shouldConfirm() {
		item, err := cmd.app.Backlogs.Get(repo, n)
		if err != nil {
			return err
		}

		ok, err := cmd.confirm(fmt.Sprintf("Remove item %d?", n), item.Text)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			_, _ = fmt.Fprintln(c.Root().ErrWriter, "Cancelled")
			return nil
		}
	}

	item, err := cmd.app.Backlogs.Remove(repo, n)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Removed: %s\n", item.Text)
	return nil
}

func (cmd *RemoveCmd) shouldConfirm() bool {
	return !cmd.yes && cmd.confirm != nil && cmd.app.Config.Remove.Confirm
}

// confirmOnTTY shows a confirmation form when stdin is a terminal and
// approves silently otherwise.
func confirmOnTTY(title, description string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true, nil
	}

	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Remove").
		Negative("Keep").
		Value(&ok).
		Run()
	return ok, err
}
