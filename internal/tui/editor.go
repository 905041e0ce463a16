package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/backlog/internal/core/backlog"
)

// Run opens the editor over b and blocks until the user quits. It returns the
// text of the item chosen with enter, and false when the user quit without
// choosing. A nil store keeps every change in memory.
func Run(store backlog.Store, b backlog.Backlog, opts Options) (string, bool, error) {
	s := NewSession(store, b, opts)

	var progOpts []tea.ProgramOption
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(New(s), progOpts...)
	if _, err := p.Run(); err != nil {
		return "", false, fmt.Errorf("run editor: %w", err)
	}

	text, ok := s.Selected()
	return text, ok, nil
}
