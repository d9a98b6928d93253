package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/blockbag/bag/source"
	"github.com/joshuapare/blockbag/pkg/itemtype"
	"github.com/joshuapare/blockbag/pkg/types"
)

// inventoryFile is the JSON fixture bagctl reads and writes.
//
//	{"size": 36, "slots": [{"slot": 0, "item": "wool:14", "quantity": 12}]}
//
// A quantity of -1 marks an unlimited stack.
type inventoryFile struct {
	Size  int         `json:"size"`
	Slots []slotEntry `json:"slots"`
}

type slotEntry struct {
	Slot     int    `json:"slot"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// readInventory loads a fixture. Entries must name distinct slots, and
// bounded quantities may not exceed limits.MaxStack; errors name the
// offending entry as slots[i].
func readInventory(path string, defaultSize int, limits types.Limits, reg *itemtype.Registry) (*source.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f inventoryFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if f.Size <= 0 {
		f.Size = defaultSize
	}

	inv := source.NewInventory(f.Size)
	seen := make(map[int]int, len(f.Slots))
	for i, e := range f.Slots {
		if e.Slot < 0 || e.Slot >= f.Size {
			return nil, fmt.Errorf("slots[%d]: slot %d out of range [0, %d)", i, e.Slot, f.Size)
		}
		if prev, dup := seen[e.Slot]; dup {
			return nil, fmt.Errorf("slots[%d]: slot %d already set by slots[%d]", i, e.Slot, prev)
		}
		seen[e.Slot] = i

		kind, variant, err := reg.Parse(e.Item)
		if err != nil {
			return nil, fmt.Errorf("slots[%d]: slot %d: %w", i, e.Slot, err)
		}
		if e.Quantity > limits.MaxStack {
			return nil, fmt.Errorf("slots[%d]: slot %d: quantity %d exceeds max stack %d", i, e.Slot, e.Quantity, limits.MaxStack)
		}
		if e.Quantity == 0 || kind == types.KindAir {
			continue
		}
		inv.Put(e.Slot, types.NewStack(kind, variant, types.Quantity(e.Quantity)))
	}
	return inv, nil
}

func inventoryToFile(inv *source.Inventory, reg *itemtype.Registry) inventoryFile {
	f := inventoryFile{Size: inv.Capacity(), Slots: []slotEntry{}}
	for i, s := range inv.Slots() {
		if s == nil {
			continue
		}
		f.Slots = append(f.Slots, slotEntry{
			Slot:     i,
			Item:     reg.Format(s.Kind, s.Variant),
			Quantity: int(s.Quantity),
		})
	}
	return f
}

func writeInventory(path string, inv *source.Inventory, reg *itemtype.Registry) error {
	data, err := json.MarshalIndent(inventoryToFile(inv, reg), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
