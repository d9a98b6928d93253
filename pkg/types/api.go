package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalid    ErrKind = iota // caller defect (void kind, bad amount)
	ErrKindOutOfStock                // fetch found no matching stack
	ErrKindOutOfSpace                // store could not place the remainder
	ErrKindSource                    // the external container failed to load or accept a write
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalid:
		return "invalid"
	case ErrKindOutOfStock:
		return "out-of-stock"
	case ErrKindOutOfSpace:
		return "out-of-space"
	case ErrKindSource:
		return "source"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional item kind and underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Item ItemKind // set for OutOfSpace; KindAir otherwise
	Err  error    // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Item != KindAir {
		msg = fmt.Sprintf("%s (item %d)", msg, e.Item)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind. A target without an item kind
// matches every item, so errors.Is(err, ErrOutOfSpace) holds for any
// OutOfSpace(kind).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Item == KindAir || t.Item == e.Item
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidRequest indicates a caller defect such as fetching the void kind.
	ErrInvalidRequest = &Error{Kind: ErrKindInvalid, Msg: "invalid request"}
	// ErrOutOfStock indicates no slot holds the requested kind/variant.
	ErrOutOfStock = &Error{Kind: ErrKindOutOfStock, Msg: "out of blocks"}
	// ErrOutOfSpace indicates no free slot remained for a deposit.
	ErrOutOfSpace = &Error{Kind: ErrKindOutOfSpace, Msg: "out of space"}
	// ErrSource indicates the backing container failed.
	ErrSource = &Error{Kind: ErrKindSource, Msg: "container source failed"}
)

// InvalidRequest builds an ErrKindInvalid error with the given detail.
func InvalidRequest(format string, args ...any) error {
	return &Error{Kind: ErrKindInvalid, Msg: fmt.Sprintf(format, args...)}
}

// OutOfSpace builds the out-of-space error for a specific item kind.
func OutOfSpace(kind ItemKind) error {
	return &Error{Kind: ErrKindOutOfSpace, Msg: ErrOutOfSpace.Msg, Item: kind}
}

// SourceError wraps a failure of the backing container.
func SourceError(op string, err error) error {
	return &Error{Kind: ErrKindSource, Msg: op, Err: err}
}

// KindOf returns the ErrKind of err, or false when err carries none.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsRecoverable reports whether err is an ordinary allocation failure
// (OutOfStock or OutOfSpace) that a batch may absorb and continue.
func IsRecoverable(err error) bool {
	k, ok := KindOf(err)
	return ok && (k == ErrKindOutOfStock || k == ErrKindOutOfSpace)
}

// -----------------------------------------------------------------------------
// Core Identifiers
// -----------------------------------------------------------------------------

// ItemKind is the primary item identifier (block or item ID).
type ItemKind int32

// Variant is the secondary identifier (damage/data value). Whether it takes
// part in matching depends on the kind, see VariantLookup.
type Variant int16

// KindAir is the reserved empty/void kind. It can never be fetched or stored.
const KindAir ItemKind = 0

// Quantity is a stack size. Negative values mean the stack is unlimited.
type Quantity int32

// Unlimited marks an inexhaustible stack. Fetch never decrements it and
// Store never increments it.
const Unlimited Quantity = -1

// IsUnlimited reports whether q is the unlimited sentinel (any negative value).
func (q Quantity) IsUnlimited() bool { return q < 0 }

// VariantLookup answers whether the variant participates in stack matching
// for a kind.
type VariantLookup interface {
	UsesVariant(kind ItemKind) bool
}

// VariantLookupFunc adapts a function to VariantLookup.
type VariantLookupFunc func(kind ItemKind) bool

// UsesVariant implements VariantLookup.
func (f VariantLookupFunc) UsesVariant(kind ItemKind) bool { return f(kind) }

// ItemDescriptor identifies what a fetch or store request is after.
type ItemDescriptor struct {
	Kind        ItemKind
	Variant     Variant
	UsesVariant bool
}

// NewDescriptor builds a descriptor, deriving UsesVariant from lookup.
// A nil lookup treats every variant as significant.
func NewDescriptor(kind ItemKind, variant Variant, lookup VariantLookup) ItemDescriptor {
	uses := true
	if lookup != nil {
		uses = lookup.UsesVariant(kind)
	}
	return ItemDescriptor{Kind: kind, Variant: variant, UsesVariant: uses}
}

// Matches reports whether a stack of kind/variant satisfies the descriptor.
func (d ItemDescriptor) Matches(kind ItemKind, variant Variant) bool {
	if d.Kind != kind {
		return false
	}
	return !d.UsesVariant || d.Variant == variant
}

// IsVoid reports whether the descriptor names the reserved void kind.
func (d ItemDescriptor) IsVoid() bool { return d.Kind == KindAir }

func (d ItemDescriptor) String() string {
	if d.UsesVariant {
		return fmt.Sprintf("%d:%d", d.Kind, d.Variant)
	}
	return fmt.Sprintf("%d", d.Kind)
}

// Stack is a quantity of one kind+variant occupying a slot.
type Stack struct {
	Kind     ItemKind `json:"kind"`
	Variant  Variant  `json:"variant,omitempty"`
	Quantity Quantity `json:"quantity"`
}

// NewStack returns a stack of quantity items.
func NewStack(kind ItemKind, variant Variant, quantity Quantity) *Stack {
	return &Stack{Kind: kind, Variant: variant, Quantity: quantity}
}

// IsUnlimited reports whether the stack is bottomless.
func (s *Stack) IsUnlimited() bool { return s.Quantity.IsUnlimited() }

// Clone returns a copy of s; nil stays nil.
func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// CloneSlots deep-copies a slot sequence.
func CloneSlots(slots []*Stack) []*Stack {
	if slots == nil {
		return nil
	}
	out := make([]*Stack, len(slots))
	for i, s := range slots {
		out[i] = s.Clone()
	}
	return out
}

// Position is a world location recorded by source-position hooks.
type Position struct {
	X, Y, Z float64
}
