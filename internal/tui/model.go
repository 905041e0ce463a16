// Package tui implements the interactive backlog editor.
package tui

import (
	tea "charm.land/bubbletea/v2"
)

// Model adapts a Session to the bubbletea runtime.
type Model struct {
	session  *Session
	quitting bool
}

// New returns a Model driving s.
func New(s *Session) Model {
	return Model{session: s}
}

// Session returns the underlying session.
func (m Model) Session() *Session { return m.session }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
	case tea.KeyPressMsg:
		if out := m.session.HandleKey(msg); out != Continue {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(Paint(Render(m.session)))
	v.AltScreen = true
	return v
}
