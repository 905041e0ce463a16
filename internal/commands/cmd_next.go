package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/backlog/internal/service"
)

type NextCmd struct {
	flags *Flags
	app   *service.App
}

// NewNextCmd creates a new next command
func NewNextCmd(flags *Flags, app *service.App) *NextCmd {
	return &NextCmd{flags: flags, app: app}
}

// Register adds the next command to the application
func (cmd *NextCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "next",
		Usage:       "Print the first pending item",
		UsageText:   "backlog next",
		Description: "Prints only the item text so the output can be piped into other tools.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *NextCmd) run(ctx context.Context, c *cli.Command) error {
	repo, err := currentRepo(cmd.flags, cmd.app)
	if err != nil {
		return err
	}

	item, _, ok, err := cmd.app.Backlogs.Next(repo)
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, "All done! Backlog is clear.")
		return nil
	}

	_, _ = fmt.Fprintln(c.Root().Writer, item.Text)
	return nil
}
