package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the editor bindings. Matching goes through key.Matches so the
// same bindings drive both input handling and the help bar.
type keyMap struct {
	Down       key.Binding
	Up         key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Add        key.Binding
	Edit       key.Binding
	Toggle     key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Delete     key.Binding
	Confirm    key.Binding
	HideDone   key.Binding
	Yank       key.Binding
	Quit       key.Binding
	Interrupt  key.Binding
	Select     key.Binding
	Commit     key.Binding
	Cancel     key.Binding
	ConfirmYes key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Toggle:     key.NewBinding(key.WithKeys("x", "space"), key.WithHelp("x", "done")),
		MoveUp:     key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:   key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("dd", "delete")),
		Confirm:    key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "delete…")),
		HideDone:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide done")),
		Yank:       key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Interrupt:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		ConfirmYes: key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "delete")),
	}
}

// normalHelp is the short help shown while browsing the list.
func (k keyMap) normalHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Add, k.Edit, k.Toggle, k.MoveDown, k.MoveUp, k.Delete, k.HideDone, k.Select, k.Quit}
}

// inputHelp is the short help shown while the input box is open.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel}
}

// confirmHelp is the short help shown by the delete prompt.
func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.ConfirmYes, key.NewBinding(key.WithKeys("n"), key.WithHelp("any", "cancel"))}
}
