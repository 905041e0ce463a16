package tui

import "github.com/charmbracelet/x/ansi"

// input is the single-line edit buffer used by InsertNew and EditExisting.
// pos is a rune index in [0, len(runes)].
type input struct {
	runes []rune
	pos   int
}

func newInput(text string) input {
	r := []rune(text)
	return input{runes: r, pos: len(r)}
}

func (in *input) Value() string { return string(in.runes) }

func (in *input) Insert(s string) {
	ins := []rune(s)
	out := make([]rune, 0, len(in.runes)+len(ins))
	out = append(out, in.runes[:in.pos]...)
	out = append(out, ins...)
	out = append(out, in.runes[in.pos:]...)
	in.runes = out
	in.pos += len(ins)
}

func (in *input) Backspace() {
	if in.pos == 0 {
		return
	}
	in.runes = append(in.runes[:in.pos-1], in.runes[in.pos:]...)
	in.pos--
}

func (in *input) Delete() {
	if in.pos >= len(in.runes) {
		return
	}
	in.runes = append(in.runes[:in.pos], in.runes[in.pos+1:]...)
}

func (in *input) Left() {
	if in.pos > 0 {
		in.pos--
	}
}

func (in *input) Right() {
	if in.pos < len(in.runes) {
		in.pos++
	}
}

func (in *input) Home() { in.pos = 0 }

func (in *input) End() { in.pos = len(in.runes) }

func (in *input) Clear() {
	in.runes = nil
	in.pos = 0
}

// window splits the buffer around the edit cursor, scrolled horizontally so
// that the cursor cell stays within width cells. under is the rune under the
// cursor, or "" at the end of the buffer.
func (in *input) window(width int) (before, under, after string) {
	width = max(width, 1)

	// Reserve one cell for the cursor.
	start := in.pos
	used := 0
	for start > 0 {
		w := ansi.StringWidth(string(in.runes[start-1]))
		if used+w > width-1 {
			break
		}
		used += w
		start--
	}
	before = string(in.runes[start:in.pos])

	if in.pos >= len(in.runes) {
		return before, "", ""
	}

	under = string(in.runes[in.pos])
	used += max(ansi.StringWidth(under), 1)

	end := in.pos + 1
	for end < len(in.runes) {
		w := ansi.StringWidth(string(in.runes[end]))
		if used+w > width {
			break
		}
		used += w
		end++
	}
	after = string(in.runes[in.pos+1 : end])
	return before, under, after
}
