package tui

import (
	"fmt"
	"sort"
)

// Layout is the wrapped form of a list of item texts at a fixed width.
type Layout struct {
	width  int
	lines  [][]string
	starts []int
	total  int
}

// NewLayout wraps every text to width. When width is below 1 the layout is
// built at width 1 and the returned error wraps ErrInvalidLayoutWidth; the
// layout is usable either way.
func NewLayout(texts []string, width int) (*Layout, error) {
	var werr error
	if width < 1 {
		werr = fmt.Errorf("width %d: %w", width, ErrInvalidLayoutWidth)
		width = 1
	}

	l := &Layout{
		width:  width,
		lines:  make([][]string, len(texts)),
		starts: make([]int, len(texts)),
	}

	for i, text := range texts {
		// width is at least 1 here, so Wrap cannot fail.
		lines, _ := Wrap(text, width)
		l.lines[i] = lines
		l.starts[i] = l.total
		l.total += len(lines)
	}

	return l, werr
}

// Width is the wrap width the layout was built at.
func (l *Layout) Width() int { return l.width }

// Len is the number of items.
func (l *Layout) Len() int { return len(l.lines) }

// Total is the number of visual lines across all items.
func (l *Layout) Total() int { return l.total }

// Lines returns the wrapped lines of item i.
func (l *Layout) Lines(i int) []string {
	if i < 0 || i >= len(l.lines) {
		return nil
	}
	return l.lines[i]
}

// Span returns the first visual line of item i and its line count.
func (l *Layout) Span(i int) (start, count int) {
	if i < 0 || i >= len(l.lines) {
		return 0, 0
	}
	return l.starts[i], len(l.lines[i])
}

// ItemAt returns the item that owns visual line n, or -1 when n is outside
// the layout.
func (l *Layout) ItemAt(n int) int {
	if n < 0 || n >= l.total {
		return -1
	}
	// First item whose start is beyond n, minus one.
	return sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > n }) - 1
}
