package backlog

import "errors"

var (
	// ErrStoreUnreadable is returned when persisted data exists but cannot be decoded.
	ErrStoreUnreadable = errors.New("backlog store unreadable")
	// ErrStoreUnwritable is returned when the backlog cannot be written back.
	ErrStoreUnwritable = errors.New("backlog store unwritable")
)

// Store persists the backlog of a single repository.
type Store interface {
	// Load returns the persisted backlog. A missing file yields an empty Backlog.
	// Returns an error wrapping ErrStoreUnreadable when the data is corrupt.
	Load() (Backlog, error)

	// Save overwrites the persisted backlog.
	// Returns an error wrapping ErrStoreUnwritable on failure.
	Save(b Backlog) error
}
