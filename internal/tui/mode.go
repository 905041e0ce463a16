package tui

// Mode is the editor's current interaction mode. The set of modes is closed:
// Normal, InsertNew, EditExisting and ConfirmDelete.
type Mode interface {
	mode()
}

// Normal is list navigation.
type Normal struct{}

// InsertNew is the input box for a new item.
type InsertNew struct{}

// EditExisting is the input box for the item at Index.
type EditExisting struct {
	Index int
}

// ConfirmDelete asks before removing the item at Index.
type ConfirmDelete struct {
	Index int
}

func (Normal) mode()        {}
func (InsertNew) mode()     {}
func (EditExisting) mode()  {}
func (ConfirmDelete) mode() {}

// Outcome tells the runtime whether the editor keeps running.
type Outcome int

const (
	Continue Outcome = iota
	Quit
	Select
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Quit:
		return "quit"
	case Select:
		return "select"
	default:
		return "unknown"
	}
}
