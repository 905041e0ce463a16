package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/backlog/internal/core/git"
	"github.com/colonyops/backlog/internal/service"
)

// ShowCmd prints the pending items of the current repository. It backs the
// root command's default action.
type ShowCmd struct {
	flags *Flags
	app   *service.App
}

// NewShowCmd creates the default action
func NewShowCmd(flags *Flags, app *service.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Run prints the pending items with their backlog numbers.
func (cmd *ShowCmd) Run(ctx context.Context, c *cli.Command) error {
	repo, err := currentRepo(cmd.flags, cmd.app)
	if err != nil {
		if errors.Is(err, git.ErrNotRepository) {
			return fmt.Errorf("%w. Use 'backlog --help' for usage", err)
		}
		return err
	}

	b, err := cmd.app.Backlogs.Load(repo)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if b.Len() == 0 {
		_, _ = fmt.Fprintln(out, "Backlog is empty. Use 'backlog add <description>' to add items.")
		return nil
	}

	pending := b.Pending()
	if pending == 0 {
		_, _ = fmt.Fprintln(out, "All done! Backlog is clear.")
		return nil
	}

	_, _ = fmt.Fprintf(out, "\n%d item(s) in backlog:\n", pending)
	for i, item := range b.Items {
		if !item.Done {
			writeItem(out, "", i+1, item)
		}
	}
	_, _ = fmt.Fprintln(out)
	return nil
}
