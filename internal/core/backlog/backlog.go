// Package backlog defines the ordered todo list owned by a single repository.
package backlog

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ErrOutOfRange is returned when an operation is given an index outside the backlog.
var ErrOutOfRange = errors.New("index out of range")

// Item is a single todo entry. Items have no ID; an item is addressed by its
// position in the Backlog.
type Item struct {
	Text      string    `json:"description"`
	CreatedAt time.Time `json:"created_at"`
	Done      bool      `json:"done"`
}

// Backlog is the ordered list of items for one repository. Order is display
// and priority order.
type Backlog struct {
	Items []Item `json:"items"`
}

// Len returns the number of items.
func (b *Backlog) Len() int {
	return len(b.Items)
}

// Get returns the item at index i.
func (b *Backlog) Get(i int) (Item, error) {
	if err := b.check(i); err != nil {
		return Item{}, err
	}
	return b.Items[i], nil
}

// InsertAt inserts a new pending item so that it ends up at index i.
// i may equal Len(), which appends.
func (b *Backlog) InsertAt(i int, text string) error {
	if i < 0 || i > len(b.Items) {
		return fmt.Errorf("insert at %d (len %d): %w", i, len(b.Items), ErrOutOfRange)
	}

	item := Item{Text: CleanText(text), CreatedAt: time.Now().UTC()}
	b.Items = append(b.Items, Item{})
	copy(b.Items[i+1:], b.Items[i:])
	b.Items[i] = item
	return nil
}

// RemoveAt deletes the item at index i and returns it.
func (b *Backlog) RemoveAt(i int) (Item, error) {
	if err := b.check(i); err != nil {
		return Item{}, err
	}

	removed := b.Items[i]
	b.Items = append(b.Items[:i], b.Items[i+1:]...)
	return removed, nil
}

// SetDone sets the done flag of the item at index i.
func (b *Backlog) SetDone(i int, done bool) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.Items[i].Done = done
	return nil
}

// SetText replaces the text of the item at index i.
func (b *Backlog) SetText(i int, text string) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.Items[i].Text = CleanText(text)
	return nil
}

// MoveUp swaps the item at index i with its upper neighbour and returns the
// item's new index. Moving the first item is a no-op.
func (b *Backlog) MoveUp(i int) (int, error) {
	if err := b.check(i); err != nil {
		return i, err
	}
	if i == 0 {
		return 0, nil
	}
	b.Items[i], b.Items[i-1] = b.Items[i-1], b.Items[i]
	return i - 1, nil
}

// MoveDown swaps the item at index i with its lower neighbour and returns the
// item's new index. Moving the last item is a no-op.
func (b *Backlog) MoveDown(i int) (int, error) {
	if err := b.check(i); err != nil {
		return i, err
	}
	if i == len(b.Items)-1 {
		return i, nil
	}
	b.Items[i], b.Items[i+1] = b.Items[i+1], b.Items[i]
	return i + 1, nil
}

// Add appends a pending item created at now.
func (b *Backlog) Add(text string, now time.Time) Item {
	item := Item{Text: CleanText(text), CreatedAt: now}
	b.Items = append(b.Items, item)
	return item
}

// NextPending returns the first item that is not done and its index.
func (b *Backlog) NextPending() (Item, int, bool) {
	for i, item := range b.Items {
		if !item.Done {
			return item, i, true
		}
	}
	return Item{}, -1, false
}

// Pending returns the number of items that are not done.
func (b *Backlog) Pending() int {
	n := 0
	for _, item := range b.Items {
		if !item.Done {
			n++
		}
	}
	return n
}

// Clean applies CleanText to every item, e.g. after loading a hand-edited
// file.
func (b *Backlog) Clean() {
	for i := range b.Items {
		b.Items[i].Text = CleanText(b.Items[i].Text)
	}
}

// Clone returns a deep copy that shares no backing array with b.
func (b *Backlog) Clone() Backlog {
	items := make([]Item, len(b.Items))
	copy(items, b.Items)
	return Backlog{Items: items}
}

func (b *Backlog) check(i int) error {
	if i < 0 || i >= len(b.Items) {
		return fmt.Errorf("index %d (len %d): %w", i, len(b.Items), ErrOutOfRange)
	}
	return nil
}

// CleanText keeps item text on a single terminal line: control characters and
// whitespace other than a plain space (newlines, tabs, carriage returns)
// become spaces.
func CleanText(text string) string {
	return strings.Map(func(r rune) rune {
		if r != ' ' && (unicode.IsControl(r) || unicode.IsSpace(r)) {
			return ' '
		}
		return r
	}, text)
}
