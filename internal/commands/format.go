package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/backlog/internal/core/backlog"
	"github.com/colonyops/backlog/internal/service"
)

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// writeItem prints one "N. [ ] text" line.
func writeItem(w io.Writer, indent string, n int, item backlog.Item) {
	_, _ = fmt.Fprintf(w, "%s%d. %s %s\n", indent, n, checkbox(item.Done), item.Text)
}

// itemNumber parses the 1-based item number given as the first argument.
func itemNumber(c *cli.Command) (int, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("%w: missing item number", service.ErrInvalidNumber)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidNumber, arg)
	}
	return n, nil
}

// itemInfo is the JSON output format for a backlog item.
type itemInfo struct {
	Number    int       `json:"number"`
	Text      string    `json:"description"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

func itemInfos(b backlog.Backlog) []itemInfo {
	out := make([]itemInfo, 0, b.Len())
	for i, item := range b.Items {
		out = append(out, itemInfo{
			Number:    i + 1,
			Text:      item.Text,
			Done:      item.Done,
			CreatedAt: item.CreatedAt,
		})
	}
	return out
}
