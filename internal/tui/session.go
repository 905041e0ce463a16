package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/backlog/internal/core/backlog"
)

const (
	titleRows  = 1
	borderRows = 2
	borderCols = 2
	inputRows  = 3
	statusRows = 1
	helpRows   = 1
)

// Options configures an editor session.
type Options struct {
	Width    int
	Height   int
	HideDone bool
	// Warning is shown from the first frame, e.g. when the backlog could
	// not be loaded.
	Warning string
	Logger  *zerolog.Logger
	// Copy receives the item text when the user yanks an item.
	Copy func(string) error
	// Output is where the editor draws. Nil means stdout.
	Output io.Writer
}

// Session is the editor state machine. It owns the in-memory backlog for the
// lifetime of the editor and persists it after every mutation.
type Session struct {
	items backlog.Backlog
	store backlog.Store // nil keeps changes in memory only
	keys  keyMap
	log   zerolog.Logger
	copy  func(string) error

	mode     Mode
	cursor   int // visible row
	pendingD bool
	hideDone bool
	input    input

	width    int
	height   int
	rows     []int // visible row -> backlog index
	layout   *Layout
	viewport Viewport

	warning string
	notice  string

	selected    string
	hasSelected bool
}

// NewSession builds a session over b. A nil store keeps every change in
// memory.
func NewSession(store backlog.Store, b backlog.Backlog, opts Options) *Session {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "editor").Logger()
	}

	items := b.Clone()
	items.Clean()

	s := &Session{
		items:    items,
		store:    store,
		keys:     defaultKeyMap(),
		log:      log,
		copy:     opts.Copy,
		mode:     Normal{},
		hideDone: opts.HideDone,
		width:    opts.Width,
		height:   opts.Height,
		warning:  opts.Warning,
	}
	s.relayout()
	return s
}

// Items returns a copy of the current backlog items.
func (s *Session) Items() []backlog.Item {
	return s.items.Clone().Items
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// Cursor returns the selected visible row.
func (s *Session) Cursor() int { return s.cursor }

// Offset returns the first visual line shown in the list.
func (s *Session) Offset() int { return s.viewport.Offset }

// ListHeight returns the number of list lines that fit on screen.
func (s *Session) ListHeight() int { return s.viewport.Height }

// Pending reports whether a first "d" is waiting for its second.
func (s *Session) Pending() bool { return s.pendingD }

// Warning returns the sticky warning, if any.
func (s *Session) Warning() string { return s.warning }

// Layout returns the wrapped layout of the visible rows.
func (s *Session) Layout() *Layout { return s.layout }

// Selected returns the text chosen with enter.
func (s *Session) Selected() (string, bool) { return s.selected, s.hasSelected }

// Resize updates the terminal size.
func (s *Session) Resize(width, height int) {
	s.width = width
	s.height = height
	s.relayout()
}

// HandleKey applies one key press and reports whether the editor should keep
// running.
func (s *Session) HandleKey(msg tea.KeyPressMsg) Outcome {
	s.notice = ""

	// ctrl+c leaves from every mode; an open input is discarded.
	if key.Matches(msg, s.keys.Interrupt) {
		s.mode = Normal{}
		s.input = input{}
		s.pendingD = false
		s.relayout()
		return Quit
	}

	var out Outcome
	switch m := s.mode.(type) {
	case Normal:
		out = s.handleNormal(msg)
	case InsertNew, EditExisting:
		s.handleInput(msg)
	case ConfirmDelete:
		s.handleConfirm(m, msg)
	}

	s.relayout()
	return out
}

func (s *Session) handleNormal(msg tea.KeyPressMsg) Outcome {
	if s.pendingD {
		s.pendingD = false
		if key.Matches(msg, s.keys.Delete) {
			s.removeAt(s.current())
			return Continue
		}
	}

	idx := s.current()

	switch {
	case key.Matches(msg, s.keys.Down):
		s.cursor++
	case key.Matches(msg, s.keys.Up):
		s.cursor--
	case key.Matches(msg, s.keys.PageDown):
		s.cursor = s.viewport.Page(s.layout, s.cursor, 1)
	case key.Matches(msg, s.keys.PageUp):
		s.cursor = s.viewport.Page(s.layout, s.cursor, -1)
	case key.Matches(msg, s.keys.Top):
		s.cursor = 0
	case key.Matches(msg, s.keys.Bottom):
		s.cursor = len(s.rows) - 1
	case key.Matches(msg, s.keys.Add):
		s.mode = InsertNew{}
		s.input = newInput("")
	case key.Matches(msg, s.keys.Edit):
		if idx >= 0 {
			s.mode = EditExisting{Index: idx}
			s.input = newInput(s.items.Items[idx].Text)
		}
	case key.Matches(msg, s.keys.Toggle):
		if idx >= 0 {
			s.apply(s.items.SetDone(idx, !s.items.Items[idx].Done))
		}
	case key.Matches(msg, s.keys.MoveUp):
		s.moveBy(-1)
	case key.Matches(msg, s.keys.MoveDown):
		s.moveBy(1)
	case key.Matches(msg, s.keys.Delete):
		if idx >= 0 {
			s.pendingD = true
		}
	case key.Matches(msg, s.keys.Confirm):
		if idx >= 0 {
			s.mode = ConfirmDelete{Index: idx}
		}
	case key.Matches(msg, s.keys.HideDone):
		s.toggleHideDone()
	case key.Matches(msg, s.keys.Yank):
		s.yank(idx)
	case key.Matches(msg, s.keys.Quit):
		return Quit
	case key.Matches(msg, s.keys.Select):
		if idx >= 0 {
			s.selected = s.items.Items[idx].Text
			s.hasSelected = true
			return Select
		}
	}

	return Continue
}

func (s *Session) handleInput(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, s.keys.Commit):
		s.commit()
		return
	case key.Matches(msg, s.keys.Cancel):
		s.mode = Normal{}
		s.input = input{}
		return
	}

	switch msg.String() {
	case "backspace":
		s.input.Backspace()
	case "delete":
		s.input.Delete()
	case "left":
		s.input.Left()
	case "right":
		s.input.Right()
	case "home", "ctrl+a":
		s.input.Home()
	case "end", "ctrl+e":
		s.input.End()
	case "ctrl+u":
		s.input.Clear()
	default:
		if msg.Text != "" && msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0 {
			s.input.Insert(backlog.CleanText(msg.Text))
		}
	}
}

func (s *Session) commit() {
	text := strings.TrimSpace(backlog.CleanText(s.input.Value()))
	mode := s.mode
	s.mode = Normal{}
	s.input = input{}

	if text == "" {
		return
	}

	switch m := mode.(type) {
	case InsertNew:
		at := s.items.Len()
		if s.apply(s.items.InsertAt(at, text)) {
			s.cursor = s.rowOf(at)
		}
	case EditExisting:
		s.apply(s.items.SetText(m.Index, text))
	}
}

func (s *Session) handleConfirm(m ConfirmDelete, msg tea.KeyPressMsg) {
	s.mode = Normal{}
	if key.Matches(msg, s.keys.ConfirmYes) {
		s.removeAt(m.Index)
	}
}

func (s *Session) removeAt(idx int) {
	if idx < 0 {
		return
	}
	_, err := s.items.RemoveAt(idx)
	s.apply(err)
}

// moveBy swaps the item under the cursor past its visible neighbour in dir.
// Hidden items in between shift by one.
func (s *Session) moveBy(dir int) {
	target := s.cursor + dir
	if s.current() < 0 || target < 0 || target >= len(s.rows) {
		return
	}

	idx, goal := s.rows[s.cursor], s.rows[target]
	var err error
	for idx != goal && err == nil {
		if dir < 0 {
			idx, err = s.items.MoveUp(idx)
		} else {
			idx, err = s.items.MoveDown(idx)
		}
	}

	if s.apply(err) {
		s.cursor = target
	}
}

func (s *Session) toggleHideDone() {
	idx := s.current()
	s.hideDone = !s.hideDone
	s.rows = s.visibleRows()
	if idx < 0 {
		return
	}

	// Stay on the same item, or the nearest visible one after it.
	s.cursor = len(s.rows) - 1
	for row, i := range s.rows {
		if i >= idx {
			s.cursor = row
			break
		}
	}
}

func (s *Session) yank(idx int) {
	if idx < 0 || s.copy == nil {
		return
	}
	if err := s.copy(s.items.Items[idx].Text); err != nil {
		s.warning = fmt.Sprintf("Copy failed: %v", err)
		s.log.Warn().Err(err).Msg("copy to clipboard")
		return
	}
	s.notice = fmt.Sprintf("Copied item %d", s.number(idx))
}

// apply finishes a backlog mutation: it reports err, or persists on success.
// It returns true when the mutation happened.
func (s *Session) apply(err error) bool {
	if err != nil {
		s.log.Error().Err(err).Msg("backlog operation rejected")
		return false
	}
	s.persist()
	return true
}

func (s *Session) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.items.Clone()); err != nil {
		s.warning = fmt.Sprintf("Not saved: %v", err)
		s.log.Warn().Err(err).Msg("persist backlog")
		return
	}
	s.warning = ""
}

// current returns the backlog index under the cursor, or -1 when the list is
// empty.
func (s *Session) current() int {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return -1
	}
	return s.rows[s.cursor]
}

// number is the label shown for backlog index idx. Rows are renumbered from
// 1 while done items are hidden.
func (s *Session) number(idx int) int {
	if !s.hideDone {
		return idx + 1
	}
	return s.rowOf(idx) + 1
}

func (s *Session) rowOf(idx int) int {
	rows := s.visibleRows()
	for row, i := range rows {
		if i == idx {
			return row
		}
	}
	return s.cursor
}

func (s *Session) visibleRows() []int {
	rows := make([]int, 0, s.items.Len())
	for i, item := range s.items.Items {
		if s.hideDone && item.Done {
			continue
		}
		rows = append(rows, i)
	}
	return rows
}

// prefixWidth is the width of the "N. [x] " label, sized for the largest
// item number.
func (s *Session) prefixWidth() int {
	return len(strconv.Itoa(max(s.items.Len(), 1))) + len(". [x] ")
}

func (s *Session) textWidth() int {
	return s.width - borderCols - s.prefixWidth()
}

func (s *Session) editing() bool {
	switch s.mode.(type) {
	case InsertNew, EditExisting:
		return true
	}
	return false
}

func (s *Session) listHeight() int {
	h := s.height - titleRows - borderRows - helpRows
	if s.editing() {
		h -= inputRows
	}
	if s.warning != "" || s.notice != "" {
		h -= statusRows
	}
	return max(h, 1)
}

// relayout recomputes rows, layout and viewport after any change.
func (s *Session) relayout() {
	s.rows = s.visibleRows()
	s.cursor = min(max(s.cursor, 0), max(len(s.rows)-1, 0))

	texts := make([]string, len(s.rows))
	for row, i := range s.rows {
		texts[row] = s.items.Items[i].Text
	}

	layout, err := NewLayout(texts, s.textWidth())
	if err != nil {
		s.log.Debug().Err(err).Int("width", s.width).Msg("terminal too narrow")
	}
	s.layout = layout

	s.viewport.Height = s.listHeight()
	s.viewport.Clamp(layout.Total())
	if len(s.rows) > 0 {
		s.viewport.Follow(layout, s.cursor)
	}
}
