package slots

import "github.com/joshuapare/blockbag/pkg/types"

// Source is the external owner of a container's contents.
type Source interface {
	// Contents returns the current slots. A nil entry is an empty slot.
	// The store copies the result, so implementations may return shared
	// slices.
	Contents() ([]*types.Stack, error)

	// Capacity reports how many slots the owner accepts on write-back.
	Capacity() int

	// SetSlot replaces one slot. A nil stack empties the slot.
	SetSlot(index int, s *types.Stack) error
}

// Flusher is the subset of Store used by components that only control the
// flush boundary (e.g., batch managers).
type Flusher interface {
	// Flush writes the snapshot back and unloads it.
	Flush() (int, error)

	// Reset discards the snapshot without writing.
	Reset()
}

// DirtyReporter is implemented by flushers that can tell which slots changed
// since their snapshot was loaded.
type DirtyReporter interface {
	DirtySlots() []int
}
