package slots

import (
	"fmt"
	"sort"

	"github.com/joshuapare/blockbag/pkg/types"
)

// Store is the lazily-materialized working copy of a container.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Store struct {
	src    Source
	slots  []*types.Stack   // owned snapshot; nil entries are empty slots
	dirty  map[int]struct{} // indices modified since load
	loaded bool
}

// NewStore creates an unloaded store over src.
func NewStore(src Source) *Store {
	return &Store{src: src}
}

// EnsureLoaded copies the source's contents into the store on first use.
// Subsequent calls are no-ops until the next Flush or Reset.
func (s *Store) EnsureLoaded() error {
	if s.loaded {
		return nil
	}

	contents, err := s.src.Contents()
	if err != nil {
		return types.SourceError("load contents", err)
	}

	s.slots = types.CloneSlots(contents)
	if s.slots == nil {
		s.slots = []*types.Stack{}
	}
	s.dirty = make(map[int]struct{})
	s.loaded = true
	return nil
}

// Loaded reports whether a snapshot is held.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Len returns the number of slots in the snapshot (0 when unloaded).
func (s *Store) Len() int {
	return len(s.slots)
}

// Slot returns the stack at index i, or nil for an empty slot.
// The returned stack is the live working copy; mutations through it must be
// followed by Touch(i).
func (s *Store) Slot(i int) *types.Stack {
	return s.slots[i]
}

// Set replaces the stack at index i and marks it dirty.
func (s *Store) Set(i int, stack *types.Stack) {
	s.slots[i] = stack
	s.Touch(i)
}

// Touch marks index i as modified.
func (s *Store) Touch(i int) {
	if s.dirty != nil {
		s.dirty[i] = struct{}{}
	}
}

// DirtySlots returns the indices modified since the snapshot was loaded,
// in ascending order.
func (s *Store) DirtySlots() []int {
	out := make([]int, 0, len(s.dirty))
	for i := range s.dirty {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Snapshot returns a deep copy of the working slots (nil when unloaded).
func (s *Store) Snapshot() []*types.Stack {
	if !s.loaded {
		return nil
	}
	return types.CloneSlots(s.slots)
}

// Flush writes the snapshot back to the source and unloads it.
//
// This method:
//  1. Returns (0, nil) if nothing was ever loaded
//  2. Writes slots[i] for every i < min(len(slots), src.Capacity())
//  3. Clears the snapshot and resets loaded
//
// If a write fails the snapshot is kept so the caller can retry; slots
// already written stay written.
func (s *Store) Flush() (int, error) {
	if !s.loaded {
		return 0, nil
	}

	n := min(len(s.slots), s.src.Capacity())
	for i := 0; i < n; i++ {
		if err := s.src.SetSlot(i, s.slots[i].Clone()); err != nil {
			return i, types.SourceError(fmt.Sprintf("write slot %d", i), err)
		}
	}

	s.Reset()
	return n, nil
}

// Reset discards the snapshot without writing anything back.
func (s *Store) Reset() {
	s.slots = nil
	s.dirty = nil
	s.loaded = false
}

var (
	_ Flusher       = (*Store)(nil)
	_ DirtyReporter = (*Store)(nil)
)
