package types

// ============================================================================
// Stack Limits Constants
// ============================================================================

const (
	// MaxStackSize is the number of items a single inventory slot can hold.
	MaxStackSize = 64

	// PlayerInventorySize is the number of slots in a player's main inventory
	// (hotbar included).
	PlayerInventorySize = 36
)

// Limits defines per-slot constraints applied by the allocator.
type Limits struct {
	// MaxStack is the largest bounded quantity a slot may hold.
	// Store requests larger than this are rejected as invalid.
	MaxStack int
}

// DefaultLimits returns the standard stack limits (64 per slot).
func DefaultLimits() Limits {
	return Limits{
		MaxStack: MaxStackSize,
	}
}

// Valid reports whether the limits can be used by an allocator.
func (l Limits) Valid() bool {
	return l.MaxStack > 0
}
