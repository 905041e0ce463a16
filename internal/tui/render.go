package tui

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/backlog/internal/core/backlog"
)

const (
	frameTitle       = "Backlog"
	emptyPlaceholder = "Nothing here yet. Press a to add an item."
	hiddenSuffix     = " (hiding done)"
	inputTitleNew    = "New item"
	inputTitleEdit   = "Edit item %d"
	confirmLabel     = "Delete item %d?"
)

// Frame is a complete description of one screen. It carries no styling;
// Paint turns it into terminal output.
type Frame struct {
	Width  int
	Height int
	Title  string

	// Lines are the visual list lines inside the viewport, top to bottom.
	Lines      []Line
	Empty      string
	ListHeight int

	Input   *InputLine
	Confirm *ConfirmPrompt

	Pending bool
	Warning string
	Notice  string
	Help    []key.Binding
}

// Line is one visual line of a wrapped item. Continuation lines carry a
// blank prefix of the same width.
type Line struct {
	Prefix       string
	Text         string
	Continuation bool
	Selected     bool
	Done         bool
}

// InputLine is the edit buffer split around the edit cursor.
type InputLine struct {
	Title  string
	Before string
	Cursor string
	After  string
}

// ConfirmPrompt asks before deleting an item.
type ConfirmPrompt struct {
	Label string
	Text  string
}

// Render describes the current session state as a Frame. It does not modify
// the session.
func Render(s *Session) Frame {
	f := Frame{
		Width:      s.width,
		Height:     s.height,
		Title:      frameTitle,
		ListHeight: s.viewport.Height,
		Pending:    s.pendingD,
		Warning:    s.warning,
		Notice:     s.notice,
	}
	if s.hideDone {
		f.Title += hiddenSuffix
	}

	if len(s.rows) == 0 {
		f.Empty = emptyPlaceholder
	}
	f.Lines = renderLines(s)

	switch m := s.mode.(type) {
	case Normal:
		f.Help = s.keys.normalHelp()
	case InsertNew:
		f.Input = renderInput(s, inputTitleNew)
		f.Help = s.keys.inputHelp()
	case EditExisting:
		f.Input = renderInput(s, fmt.Sprintf(inputTitleEdit, s.number(m.Index)))
		f.Help = s.keys.inputHelp()
	case ConfirmDelete:
		f.Confirm = &ConfirmPrompt{Label: fmt.Sprintf(confirmLabel, s.number(m.Index))}
		if m.Index >= 0 && m.Index < s.items.Len() {
			f.Confirm.Text = s.items.Items[m.Index].Text
		}
		f.Help = s.keys.confirmHelp()
	}

	return f
}

func renderLines(s *Session) []Line {
	l := s.layout
	if l == nil || l.Total() == 0 {
		return nil
	}

	digits := len(strconv.Itoa(max(s.items.Len(), 1)))
	blank := fmt.Sprintf("%*s", s.prefixWidth(), "")

	end := min(s.viewport.Offset+s.viewport.Height, l.Total())
	lines := make([]Line, 0, end-s.viewport.Offset)

	for n := s.viewport.Offset; n < end; n++ {
		row := l.ItemAt(n)
		start, _ := l.Span(row)
		idx := s.rows[row]
		item := s.items.Items[idx]

		line := Line{
			Text:         l.Lines(row)[n-start],
			Continuation: n > start,
			Selected:     row == s.cursor,
			Done:         item.Done,
		}
		if line.Continuation {
			line.Prefix = blank
		} else {
			line.Prefix = fmt.Sprintf("%*d. %s ", digits, s.number(idx), marker(item))
		}
		lines = append(lines, line)
	}
	return lines
}

func marker(item backlog.Item) string {
	if item.Done {
		return "[x]"
	}
	return "[ ]"
}

func renderInput(s *Session, title string) *InputLine {
	// The title sits in front of the buffer as "title: ".
	before, under, after := s.input.window(s.width - borderCols - len(title) - 2)
	return &InputLine{
		Title:  title,
		Before: before,
		Cursor: under,
		After:  after,
	}
}
