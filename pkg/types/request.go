package types

// Request is a generic resource request from the editing engine.
type Request interface {
	ItemKind() ItemKind
	ItemVariant() Variant
}

// Amounted is implemented by requests that carry an explicit count.
type Amounted interface {
	ItemAmount() int
}

// RequestAmount returns the request's explicit amount, or 1 when it has none.
func RequestAmount(req Request) int {
	if a, ok := req.(Amounted); ok {
		return a.ItemAmount()
	}
	return 1
}

// Describe extracts the descriptor and amount carried by req.
func Describe(req Request, lookup VariantLookup) (ItemDescriptor, int) {
	return NewDescriptor(req.ItemKind(), req.ItemVariant(), lookup), RequestAmount(req)
}

// Item is a single item of a kind/variant.
type Item struct {
	Kind    ItemKind
	Variant Variant
}

func (i Item) ItemKind() ItemKind { return i.Kind }
func (i Item) ItemVariant() Variant { return i.Variant }

// ItemStack is an item with an explicit amount.
type ItemStack struct {
	Item
	Amount int
}

func (s ItemStack) ItemAmount() int { return s.Amount }
