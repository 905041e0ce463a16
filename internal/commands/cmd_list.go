package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/backlog/internal/core/backlog"
	"github.com/colonyops/backlog/internal/service"
	"github.com/colonyops/backlog/pkg/iojson"
)

type ListCmd struct {
	flags *Flags
	app   *service.App

	// flags
	all        bool
	match      string
	jsonOutput bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags, app *service.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List backlog items",
		UsageText: "backlog list [--all [--match <glob>]] [--json]",
		Description: `Lists every item of the current repository's backlog, done items included.

With --all, lists the backlogs of every repository in the global index that
still has pending items. --match filters those repositories by a glob on the
repository name or path.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "list backlogs across all known repositories",
				Destination: &cmd.all,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "glob on repository name or path (requires --all)",
				Destination: &cmd.match,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.all {
		return cmd.runAll(c)
	}
	if cmd.match != "" {
		return errors.New("--match requires --all")
	}

	repo, err := currentRepo(cmd.flags, cmd.app)
	if err != nil {
		return err
	}

	b, err := cmd.app.Backlogs.Load(repo)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, info := range itemInfos(b) {
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	if b.Len() == 0 {
		_, _ = fmt.Fprintln(out, "Backlog is empty.")
		return nil
	}

	_, _ = fmt.Fprintln(out, "\nBacklog:")
	_, _ = fmt.Fprintln(out, "--------")
	for i, item := range b.Items {
		writeItem(out, "", i+1, item)
	}
	_, _ = fmt.Fprintln(out)
	return nil
}

// repoInfo is the JSON output format for backlog list --all --json.
type repoInfo struct {
	Repo    string     `json:"repo"`
	Name    string     `json:"name"`
	Pending int        `json:"pending"`
	Items   []itemInfo `json:"items"`
	Error   string     `json:"error,omitempty"`
}

func (cmd *ListCmd) runAll(c *cli.Command) error {
	repos, err := cmd.app.Backlogs.ListAll(cmd.match)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, rb := range repos {
			info := repoInfo{
				Repo:    rb.Repo.Root,
				Name:    rb.Repo.Name,
				Pending: rb.Backlog.Pending(),
				Items:   itemInfos(rb.Backlog),
			}
			if rb.Err != nil {
				info.Error = rb.Err.Error()
			}
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode repository: %w", err)
			}
		}
		return nil
	}

	if len(repos) == 0 {
		_, _ = fmt.Fprintln(out, "No backlogs found.")
		return nil
	}

	for _, rb := range repos {
		if rb.Err != nil {
			_, _ = fmt.Fprintf(c.Root().ErrWriter, "skipping %s: %v\n", rb.Repo.Root, rb.Err)
			continue
		}
		if rb.Backlog.Pending() == 0 {
			continue
		}
		writeRepo(out, rb.Repo.Root, rb.Backlog)
	}
	_, _ = fmt.Fprintln(out)
	return nil
}

func writeRepo(w io.Writer, root string, b backlog.Backlog) {
	_, _ = fmt.Fprintf(w, "\n%s\n", root)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(root)))
	for i, item := range b.Items {
		writeItem(w, "  ", i+1, item)
	}
}
