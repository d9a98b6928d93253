// Package source provides container sources for the slot store.
//
// Inventory is an in-memory player inventory. Hosts that own a real
// inventory implement slots.Source directly; Inventory serves tools, tests
// and offline simulation.
package source

import (
	"fmt"

	"github.com/joshuapare/blockbag/bag/slots"
	"github.com/joshuapare/blockbag/pkg/types"
)

// Inventory is a fixed-size, in-memory container.
type Inventory struct {
	items  []*types.Stack
	writes int
}

// NewInventory creates an empty inventory with size slots.
func NewInventory(size int) *Inventory {
	return &Inventory{items: make([]*types.Stack, size)}
}

// NewPlayerInventory creates an empty inventory of PlayerInventorySize slots.
func NewPlayerInventory() *Inventory {
	return NewInventory(types.PlayerInventorySize)
}

// FromSlots creates an inventory holding copies of items. Its size is
// len(items).
func FromSlots(items []*types.Stack) *Inventory {
	return &Inventory{items: types.CloneSlots(items)}
}

// Contents implements slots.Source.
func (inv *Inventory) Contents() ([]*types.Stack, error) {
	return types.CloneSlots(inv.items), nil
}

// Capacity implements slots.Source.
func (inv *Inventory) Capacity() int {
	return len(inv.items)
}

// SetSlot implements slots.Source.
func (inv *Inventory) SetSlot(index int, s *types.Stack) error {
	if index < 0 || index >= len(inv.items) {
		return fmt.Errorf("source: slot %d out of range [0, %d)", index, len(inv.items))
	}
	inv.items[index] = s.Clone()
	inv.writes++
	return nil
}

// Get returns a copy of the stack at index, or nil.
func (inv *Inventory) Get(index int) *types.Stack {
	return inv.items[index].Clone()
}

// Put places a copy of s at index without counting it as a write-back.
// It models other actors changing the inventory between load and flush.
func (inv *Inventory) Put(index int, s *types.Stack) {
	inv.items[index] = s.Clone()
}

// Slots returns a copy of every slot.
func (inv *Inventory) Slots() []*types.Stack {
	return types.CloneSlots(inv.items)
}

// Writes returns how many SetSlot calls the inventory has received.
func (inv *Inventory) Writes() int {
	return inv.writes
}

// Count returns the total bounded quantity of kind/variant held.
// Unlimited stacks are not counted.
func (inv *Inventory) Count(desc types.ItemDescriptor) int {
	total := 0
	for _, s := range inv.items {
		if s == nil || s.IsUnlimited() || !desc.Matches(s.Kind, s.Variant) {
			continue
		}
		total += int(s.Quantity)
	}
	return total
}

var _ slots.Source = (*Inventory)(nil)
