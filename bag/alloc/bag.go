package alloc

import (
	"github.com/joshuapare/blockbag/bag/slots"
	"github.com/joshuapare/blockbag/pkg/types"
)

// Bag is the slot allocator over a container snapshot.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Bag struct {
	store  *slots.Store
	limits types.Limits
	lookup types.VariantLookup
	hooks  PositionHooks
}

// New creates a bag over store.
func New(store *slots.Store, opts Options) *Bag {
	if !opts.Limits.Valid() {
		opts.Limits = types.DefaultLimits()
	}
	if opts.Hooks == nil {
		opts.Hooks = NopHooks{}
	}
	return &Bag{
		store:  store,
		limits: opts.Limits,
		lookup: opts.Lookup,
		hooks:  opts.Hooks,
	}
}

// NewForSource is a convenience wrapper that creates the store as well.
func NewForSource(src slots.Source, opts Options) *Bag {
	return New(slots.NewStore(src), opts)
}

// Slots returns the underlying slot store.
func (b *Bag) Slots() *slots.Store {
	return b.store
}

// Limits returns the limits in effect.
func (b *Bag) Limits() types.Limits {
	return b.limits
}

// Describe builds a descriptor for kind/variant using the bag's lookup.
func (b *Bag) Describe(kind types.ItemKind, variant types.Variant) types.ItemDescriptor {
	return types.NewDescriptor(kind, variant, b.lookup)
}

// Fetch withdraws exactly one unit of a stack matching desc.
//
// The first matching slot in index order wins. An unlimited stack satisfies
// the fetch untouched.
func (b *Bag) Fetch(desc types.ItemDescriptor) error {
	if desc.IsVoid() {
		return errFetchAir
	}

	if err := b.store.EnsureLoaded(); err != nil {
		return err
	}

	for i := 0; i < b.store.Len(); i++ {
		stack := b.store.Slot(i)
		if stack == nil {
			continue
		}
		if !desc.Matches(stack.Kind, stack.Variant) {
			continue
		}

		if stack.IsUnlimited() {
			return nil
		}

		if stack.Quantity > 1 {
			stack.Quantity--
			b.store.Touch(i)
		} else {
			b.store.Set(i, nil)
		}
		return nil
	}

	return ErrOutOfStock
}

// Store deposits amount units of desc, merging into existing stacks first
// and spilling the remainder into at most one free slot.
//
// Merges made before an OutOfSpace failure are not rolled back.
func (b *Bag) Store(desc types.ItemDescriptor, amount int) error {
	if desc.IsVoid() {
		return errStoreAir
	}
	if amount < 1 || amount > b.limits.MaxStack {
		return types.InvalidRequest("alloc: store amount %d outside [1, %d]", amount, b.limits.MaxStack)
	}

	if err := b.store.EnsureLoaded(); err != nil {
		return err
	}

	maxStack := types.Quantity(b.limits.MaxStack)
	remaining := types.Quantity(amount)
	freeSlot := -1

	for i := 0; i < b.store.Len(); i++ {
		stack := b.store.Slot(i)
		if stack == nil {
			// Held in reserve; merging always comes first
			if freeSlot == -1 {
				freeSlot = i
			}
			continue
		}
		if !desc.Matches(stack.Kind, stack.Variant) {
			continue
		}

		if stack.IsUnlimited() {
			return nil
		}
		if stack.Quantity >= maxStack {
			continue
		}

		headroom := maxStack - stack.Quantity
		if headroom >= remaining {
			stack.Quantity += remaining
			b.store.Touch(i)
			return nil
		}

		stack.Quantity = maxStack
		b.store.Touch(i)
		remaining -= headroom
	}

	if freeSlot > -1 {
		b.store.Set(freeSlot, types.NewStack(desc.Kind, desc.Variant, remaining))
		return nil
	}

	return types.OutOfSpace(desc.Kind)
}

// FetchItem withdraws one unit of the item named by req.
func (b *Bag) FetchItem(req types.Request) error {
	desc, amount := types.Describe(req, b.lookup)
	if amount != 1 {
		return types.InvalidRequest("alloc: fetch amount must be 1, got %d", amount)
	}
	return b.Fetch(desc)
}

// StoreItem deposits the item and amount carried by req. Amounts above
// MaxStack are stored one MaxStack chunk at a time; the first failure stops
// the deposit and earlier chunks stay stored.
func (b *Bag) StoreItem(req types.Request) error {
	desc, amount := types.Describe(req, b.lookup)
	if amount < 1 {
		return types.InvalidRequest("alloc: store amount must be positive, got %d", amount)
	}
	for amount > 0 {
		chunk := min(amount, b.limits.MaxStack)
		if err := b.Store(desc, chunk); err != nil {
			return err
		}
		amount -= chunk
	}
	return nil
}

// Flush writes the working slots back to the container and unloads them.
// It is a no-op when nothing was loaded.
func (b *Bag) Flush() (int, error) {
	return b.store.Flush()
}

// DirtySlots returns the slot indices modified since the working slots were
// loaded.
func (b *Bag) DirtySlots() []int {
	return b.store.DirtySlots()
}

// Reset discards pending changes without writing them.
func (b *Bag) Reset() {
	b.store.Reset()
}

// AddSourcePosition forwards to the configured hooks.
func (b *Bag) AddSourcePosition(pos types.Position) {
	b.hooks.AddSourcePosition(pos)
}

// AddSingleSourcePosition forwards to the configured hooks.
func (b *Bag) AddSingleSourcePosition(pos types.Position) {
	b.hooks.AddSingleSourcePosition(pos)
}

var (
	_ Allocator           = (*Bag)(nil)
	_ slots.DirtyReporter = (*Bag)(nil)
)
