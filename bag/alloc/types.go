package alloc

import (
	"github.com/joshuapare/blockbag/bag/slots"
	"github.com/joshuapare/blockbag/pkg/types"
)

// Allocator defines the fetch/store contract an editing engine consumes.
//
// Implementations:
//   - Bag: Slot allocator over a lazily-loaded container snapshot
type Allocator interface {
	// Fetch withdraws exactly one unit matching desc.
	Fetch(desc types.ItemDescriptor) error

	// Store deposits amount units of desc. amount must lie in [1, MaxStack].
	Store(desc types.ItemDescriptor, amount int) error

	// FetchItem withdraws the item named by req. req must not carry an
	// amount other than one.
	FetchItem(req types.Request) error

	// StoreItem deposits the item and amount (default 1) named by req.
	StoreItem(req types.Request) error

	// Describe builds a descriptor for kind/variant using the bag's lookup.
	Describe(kind types.ItemKind, variant types.Variant) types.ItemDescriptor

	// Flush writes pending changes back to the container.
	// It is also the commit half of slots.Flusher.
	slots.Flusher

	PositionHooks
}

// Options configures a Bag. The zero value is usable.
type Options struct {
	// Limits bounds per-slot quantities. If invalid, DefaultLimits() is used.
	Limits types.Limits

	// Lookup decides whether the variant takes part in matching.
	// If nil, every variant is significant.
	Lookup types.VariantLookup

	// Hooks receives source positions. If nil, NopHooks is used.
	Hooks PositionHooks
}
