package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/backlog/internal/service"
)

type AddCmd struct {
	flags *Flags
	app   *service.App
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags, app *service.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add an item to the current repository's backlog",
		UsageText: "backlog add <description...>",
		Description: `Appends a pending item to the backlog of the repository containing the
working directory. All arguments are joined with spaces.

The repository is also recorded in the global index used by 'backlog list --all'.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	repo, err := currentRepo(cmd.flags, cmd.app)
	if err != nil {
		return err
	}

	item, err := cmd.app.Backlogs.Add(repo, strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "Added: %s\n", item.Text)
	return nil
}
