package tui

import (
	"errors"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/backlog/internal/core/backlog"
)

// ErrInvalidLayoutWidth is returned when text is wrapped to fewer than one cell.
var ErrInvalidLayoutWidth = errors.New("layout width must be at least 1")

// segment is a word plus the whitespace that follows it.
type segment struct {
	word  string
	space string
}

func segments(text string) []segment {
	var (
		out     []segment
		inSpace bool
		word    strings.Builder
		space   strings.Builder
	)

	flush := func() {
		out = append(out, segment{word: word.String(), space: space.String()})
		word.Reset()
		space.Reset()
	}

	for _, r := range text {
		if unicode.IsSpace(r) {
			inSpace = true
			space.WriteRune(r)
			continue
		}
		if inSpace {
			flush()
			inSpace = false
		}
		word.WriteRune(r)
	}
	if word.Len() > 0 || space.Len() > 0 {
		flush()
	}
	return out
}

// Wrap breaks text into lines of at most width display cells. Lines break at
// whitespace; a word wider than width is split at the width boundary.
// Control characters, tabs and newlines are wrapped as plain spaces (see
// backlog.CleanText); otherwise whitespace is kept, so joining the lines
// reproduces the cleaned text exactly. A single rune wider than width occupies
// a line on its own.
func Wrap(text string, width int) ([]string, error) {
	if width < 1 {
		return nil, ErrInvalidLayoutWidth
	}
	text = backlog.CleanText(text)
	if text == "" {
		return []string{""}, nil
	}

	var (
		lines []string
		line  strings.Builder
		used  int
	)

	breakLine := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
	}

	feed := func(s string) {
		for _, r := range s {
			rw := ansi.StringWidth(string(r))
			if used > 0 && used+rw > width {
				breakLine()
			}
			line.WriteRune(r)
			used += rw
		}
	}

	for _, seg := range segments(text) {
		ww := ansi.StringWidth(seg.word)
		sw := ansi.StringWidth(seg.space)

		switch {
		case used+ww+sw <= width:
			line.WriteString(seg.word)
			line.WriteString(seg.space)
			used += ww + sw
		case used > 0 && ww+sw <= width:
			breakLine()
			line.WriteString(seg.word)
			line.WriteString(seg.space)
			used = ww + sw
		default:
			if used > 0 && used+ww > width {
				breakLine()
			}
			feed(seg.word)
			feed(seg.space)
		}
	}

	lines = append(lines, line.String())
	return lines, nil
}
