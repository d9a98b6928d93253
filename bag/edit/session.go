package edit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"

	"github.com/google/uuid"

	"github.com/joshuapare/blockbag/bag/alloc"
	"github.com/joshuapare/blockbag/bag/tx"
	"github.com/joshuapare/blockbag/pkg/types"
)

// ErrFinished indicates a session used after Finish or Cancel.
var ErrFinished = errors.New("edit: session finished")

// Options configures a Session.
type Options struct {
	// Logger receives per-session diagnostics. If nil, logs are discarded.
	Logger *slog.Logger
}

// Summary reports what a session did.
type Summary struct {
	SessionID    uuid.UUID              `json:"session_id"`
	Placed       int                    `json:"placed"`
	Removed      int                    `json:"removed"`
	Missing      map[types.ItemKind]int `json:"missing,omitempty"`
	Overflow     map[types.ItemKind]int `json:"overflow,omitempty"`
	Batches      uint32                 `json:"batches"`
	SlotsWritten int                    `json:"slots_written"`
	SlotsChanged int                    `json:"slots_changed"`
}

// Session applies block changes through a bag and aggregates shortages.
//
// NOT thread-safe. A session owns its bag for its whole lifetime.
type Session struct {
	ID uuid.UUID

	bag      alloc.Allocator
	mgr      *tx.Manager
	log      *slog.Logger
	placed   int
	removed  int
	missing  map[types.ItemKind]int
	overflow map[types.ItemKind]int
	written  int
	changed  int
	done     bool
}

// NewSession starts a session (and its first batch) over bag.
func NewSession(bag alloc.Allocator, opts Options) *Session {
	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		ID:       id,
		bag:      bag,
		mgr:      tx.NewManager(bag),
		log:      logger.With("session", id.String()),
		missing:  make(map[types.ItemKind]int),
		overflow: make(map[types.ItemKind]int),
	}
	s.mgr.Begin()
	return s
}

// Place fetches one block of item for pos. It reports false when the bag
// ran out, in which case the caller must not place the block. Air needs no
// material and is always placed.
func (s *Session) Place(pos types.Position, item types.Item) (bool, error) {
	if s.done {
		return false, ErrFinished
	}
	if item.Kind == types.KindAir {
		return true, nil
	}

	err := s.bag.Fetch(s.bag.Describe(item.Kind, item.Variant))
	switch {
	case err == nil:
		s.placed++
		return true, nil
	case errors.Is(err, alloc.ErrOutOfStock):
		s.missing[item.Kind]++
		s.log.Debug("out of blocks", "kind", item.Kind, "variant", item.Variant, "pos", pos)
		return false, nil
	default:
		return false, fmt.Errorf("place %d:%d: %w", item.Kind, item.Variant, err)
	}
}

// Remove stores the block removed from pos. It reports false when the bag
// had no room; the block is then lost, as in-game drops would be.
func (s *Session) Remove(pos types.Position, item types.Item) (bool, error) {
	if s.done {
		return false, ErrFinished
	}
	if item.Kind == types.KindAir {
		return true, nil
	}

	err := s.bag.Store(s.bag.Describe(item.Kind, item.Variant), 1)
	switch {
	case err == nil:
		s.removed++
		s.bag.AddSingleSourcePosition(pos)
		return true, nil
	case errors.Is(err, alloc.ErrOutOfSpace):
		s.overflow[item.Kind]++
		s.log.Debug("out of space", "kind", item.Kind, "variant", item.Variant, "pos", pos)
		return false, nil
	default:
		return false, fmt.Errorf("remove %d:%d: %w", item.Kind, item.Variant, err)
	}
}

// Replace exchanges existing for next at pos: next is fetched first and
// existing is stored only once the fetch succeeded. When next is missing,
// existing stays in the world and the bag is left untouched. It reports
// whether next may be placed. Replacing a block with itself touches nothing.
func (s *Session) Replace(pos types.Position, existing, next types.Item) (bool, error) {
	if s.done {
		return false, ErrFinished
	}
	if existing == next {
		return true, nil
	}
	ok, err := s.Place(pos, next)
	if err != nil || !ok {
		return false, err
	}
	if _, err := s.Remove(pos, existing); err != nil {
		return true, err
	}
	return true, nil
}

// AddSource registers pos as a source of material with the bag.
func (s *Session) AddSource(pos types.Position) {
	s.bag.AddSourcePosition(pos)
}

// Checkpoint commits the current batch and starts a new one. The next bag
// operation reloads the inventory.
func (s *Session) Checkpoint() error {
	if s.done {
		return ErrFinished
	}
	if err := s.commit(); err != nil {
		return err
	}
	s.mgr.Begin()
	return nil
}

// Finish commits the last batch and returns the summary.
func (s *Session) Finish() (Summary, error) {
	if s.done {
		return Summary{}, ErrFinished
	}
	if err := s.commit(); err != nil {
		return s.summary(), err
	}
	s.done = true

	sum := s.summary()
	s.log.Info("edit session finished",
		"placed", sum.Placed,
		"removed", sum.Removed,
		"missing_kinds", len(sum.Missing),
		"overflow_kinds", len(sum.Overflow),
		"slots_written", sum.SlotsWritten,
		"slots_changed", sum.SlotsChanged,
	)
	return sum, nil
}

// Cancel discards every uncommitted change and ends the session.
func (s *Session) Cancel() {
	if s.done {
		return
	}
	s.mgr.Rollback()
	s.done = true
	s.log.Info("edit session cancelled")
}

// Missing returns a copy of the per-kind count of blocks that could not be
// placed.
func (s *Session) Missing() map[types.ItemKind]int {
	return maps.Clone(s.missing)
}

// Overflow returns a copy of the per-kind count of removed blocks that did
// not fit.
func (s *Session) Overflow() map[types.ItemKind]int {
	return maps.Clone(s.overflow)
}

func (s *Session) commit() error {
	if err := s.mgr.Commit(); err != nil {
		s.log.Error("commit failed", "error", err)
		return err
	}
	s.written += s.mgr.LastWritten()
	s.changed += s.mgr.LastChanged()
	return nil
}

func (s *Session) summary() Summary {
	sum := Summary{
		SessionID:    s.ID,
		Placed:       s.placed,
		Removed:      s.removed,
		Batches:      s.mgr.Sequence(),
		SlotsWritten: s.written,
		SlotsChanged: s.changed,
	}
	if len(s.missing) > 0 {
		sum.Missing = maps.Clone(s.missing)
	}
	if len(s.overflow) > 0 {
		sum.Overflow = maps.Clone(s.overflow)
	}
	return sum
}
