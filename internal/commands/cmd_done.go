package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/backlog/internal/service"
)

type DoneCmd struct {
	flags *Flags
	app   *service.App
}

// NewDoneCmd creates a new done command
func NewDoneCmd(flags *Flags, app *service.App) *DoneCmd {
	return &DoneCmd{flags: flags, app: app}
}

// Register adds the done command to the application
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "done",
		Usage:     "Mark an item as done",
		UsageText: "backlog done <number>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	repo, err := currentRepo(cmd.flags, cmd.app)
	if err != nil {
		return err
	}

	n, err := itemNumber(c)
	if err != nil {
		return err
	}

	item, err := cmd.app.Backlogs.Done(repo, n)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Marked as done: %s\n", item.Text)
	return nil
}
