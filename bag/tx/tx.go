// Package tx provides batch boundaries for block bag modifications.
//
// Batch Protocol:
//  1. Begin() - mark a batch as started
//  2. [Fetch/Store calls mutate the in-memory slots]
//  3. Commit() - flush the slots to the container and end the batch
//
// Rollback() ends the batch by discarding the in-memory slots; nothing is
// written to the container.
package tx

import (
	"fmt"

	"github.com/joshuapare/blockbag/bag/slots"
)

// Manager coordinates batch boundaries over a flushable slot store.
//
// The manager is NOT thread-safe. Only one goroutine should use it at a time.
type Manager struct {
	f       slots.Flusher // Store (or bag) being batched
	seq     uint32        // Number of committed batches
	written int           // Slots written by the last commit
	changed int           // Slots modified during the last committed batch
	inTx    bool          // Whether a batch is active
}

// NewManager creates a batch manager for f.
func NewManager(f slots.Flusher) *Manager {
	return &Manager{
		f:    f,
		seq:  0,
		inTx: false,
	}
}

// Begin starts a new batch.
// If Begin() is called while already in a batch, it's a no-op.
func (m *Manager) Begin() {
	if m.inTx {
		// Already in batch, idempotent
		return
	}
	m.inTx = true
}

// Commit flushes the in-memory slots and ends the batch.
//
// If Commit() is called without an active batch, it's a no-op. If the flush
// fails the batch stays active so the caller can retry or roll back.
func (m *Manager) Commit() error {
	if !m.inTx {
		return nil
	}

	changed := 0
	if dr, ok := m.f.(slots.DirtyReporter); ok {
		changed = len(dr.DirtySlots())
	}

	n, err := m.f.Flush()
	if err != nil {
		return fmt.Errorf("flush slots: %w", err)
	}

	m.written = n
	m.changed = changed
	m.seq++
	m.inTx = false
	return nil
}

// Rollback discards the in-memory slots and ends the batch.
//
// Fetch/Store calls already made are lost; the container keeps whatever it
// held before (or whatever other actors wrote since).
func (m *Manager) Rollback() {
	m.f.Reset()
	m.inTx = false
}

// InTransaction returns whether a batch is currently active.
func (m *Manager) InTransaction() bool {
	return m.inTx
}

// Sequence returns the number of committed batches.
func (m *Manager) Sequence() uint32 {
	return m.seq
}

// LastWritten returns the number of slots written by the last commit.
func (m *Manager) LastWritten() int {
	return m.written
}

// LastChanged returns the number of slots modified during the last committed
// batch. It is zero when the flusher does not report dirty slots.
func (m *Manager) LastChanged() int {
	return m.changed
}
