package tui

// Viewport is the window of visual lines shown in the list area.
type Viewport struct {
	Offset int
	Height int
}

// MaxOffset is the largest offset that still fills the window.
func (v Viewport) MaxOffset(total int) int {
	return max(0, total-max(v.Height, 0))
}

// Clamp pulls the offset back into [0, MaxOffset].
func (v *Viewport) Clamp(total int) {
	v.Offset = min(max(v.Offset, 0), v.MaxOffset(total))
}

// Follow scrolls the minimum amount needed to show item cursor. An item taller
// than the window is aligned to its first line.
func (v *Viewport) Follow(l *Layout, cursor int) {
	if cursor < 0 || cursor >= l.Len() || v.Height < 1 {
		v.Clamp(l.Total())
		return
	}

	start, count := l.Span(cursor)
	end := start + count

	switch {
	case start < v.Offset:
		v.Offset = start
	case end > v.Offset+v.Height:
		v.Offset = min(end-v.Height, start)
	}
	v.Clamp(l.Total())
}

// visible reports whether item i lies entirely inside the window.
func (v Viewport) visible(l *Layout, i int) bool {
	start, count := l.Span(i)
	return start >= v.Offset && start+count <= v.Offset+v.Height
}

// intersects reports whether any line of item i is inside the window.
func (v Viewport) intersects(l *Layout, i int) bool {
	start, count := l.Span(i)
	return start < v.Offset+v.Height && start+count > v.Offset
}

// Page scrolls one window height in dir (+1 down, -1 up) and returns the item
// the cursor should land on. The cursor stays put while its item remains
// fully visible; otherwise it moves to the nearest fully visible item, or to
// an intersecting one when no item fits entirely.
func (v *Viewport) Page(l *Layout, cursor, dir int) int {
	if l.Len() == 0 {
		v.Offset = 0
		return 0
	}

	step := max(v.Height, 1)
	if dir < 0 {
		step = -step
	}
	v.Offset += step
	v.Clamp(l.Total())

	if cursor >= 0 && cursor < l.Len() && v.visible(l, cursor) {
		return cursor
	}

	first, last, starting := -1, -1, -1
	for i := l.ItemAt(v.Offset); i >= 0 && i < l.Len(); i++ {
		if !v.intersects(l, i) {
			break
		}
		if start, _ := l.Span(i); starting < 0 && start >= v.Offset {
			starting = i
		}
		if v.visible(l, i) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	var next int
	switch {
	case first < 0 && starting >= 0:
		next = starting
	case first < 0:
		next = max(l.ItemAt(v.Offset), 0)
	case cursor < first:
		next = first
	default:
		next = last
	}

	v.Follow(l, next)
	return next
}
