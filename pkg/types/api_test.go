package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemDescriptor_Matches(t *testing.T) {
	tests := []struct {
		name    string
		desc    ItemDescriptor
		kind    ItemKind
		variant Variant
		want    bool
	}{
		{"same kind, variant ignored", ItemDescriptor{Kind: 1}, 1, 7, true},
		{"different kind", ItemDescriptor{Kind: 1}, 2, 0, false},
		{"variant significant and equal", ItemDescriptor{Kind: 35, Variant: 14, UsesVariant: true}, 35, 14, true},
		{"variant significant and different", ItemDescriptor{Kind: 35, Variant: 14, UsesVariant: true}, 35, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.Matches(tt.kind, tt.variant))
		})
	}
}

func TestNewDescriptor_Lookup(t *testing.T) {
	lookup := VariantLookupFunc(func(kind ItemKind) bool { return kind == 35 })

	assert.True(t, NewDescriptor(35, 3, lookup).UsesVariant)
	assert.False(t, NewDescriptor(1, 3, lookup).UsesVariant)
	assert.True(t, NewDescriptor(1, 3, nil).UsesVariant, "nil lookup treats variants as significant")
}

func TestQuantity_Unlimited(t *testing.T) {
	assert.True(t, Unlimited.IsUnlimited())
	assert.True(t, Quantity(-7).IsUnlimited())
	assert.False(t, Quantity(1).IsUnlimited())
	assert.True(t, NewStack(1, 0, Unlimited).IsUnlimited())
}

func TestStack_Clone(t *testing.T) {
	var nilStack *Stack
	assert.Nil(t, nilStack.Clone())

	orig := NewStack(4, 2, 10)
	c := orig.Clone()
	c.Quantity = 1
	assert.Equal(t, Quantity(10), orig.Quantity)

	slots := CloneSlots([]*Stack{orig, nil})
	require.Len(t, slots, 2)
	assert.Nil(t, slots[1])
	assert.NotSame(t, orig, slots[0])
}

func TestError_IsMatchesKind(t *testing.T) {
	err := OutOfSpace(35)

	assert.ErrorIs(t, err, ErrOutOfSpace)
	assert.ErrorIs(t, err, OutOfSpace(35))
	assert.NotErrorIs(t, err, OutOfSpace(1))
	assert.NotErrorIs(t, err, ErrOutOfStock)
	assert.Contains(t, err.Error(), "item 35")

	wrapped := fmt.Errorf("place: %w", err)
	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrKindOutOfSpace, kind)
	assert.True(t, IsRecoverable(wrapped))
}

func TestError_Classification(t *testing.T) {
	assert.True(t, IsRecoverable(ErrOutOfStock))
	assert.False(t, IsRecoverable(InvalidRequest("bad %d", 1)))
	assert.False(t, IsRecoverable(errors.New("plain")))
	assert.False(t, IsRecoverable(nil))

	cause := errors.New("disk gone")
	err := SourceError("load contents", cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrSource)
	assert.Equal(t, "load contents: disk gone", err.Error())
	assert.Equal(t, "out-of-stock", ErrKindOutOfStock.String())
}

func TestRequestAmount(t *testing.T) {
	assert.Equal(t, 1, RequestAmount(Item{Kind: 1}))
	assert.Equal(t, 12, RequestAmount(ItemStack{Item: Item{Kind: 1}, Amount: 12}))

	desc, amount := Describe(ItemStack{Item: Item{Kind: 35, Variant: 2}, Amount: 3}, nil)
	assert.Equal(t, ItemDescriptor{Kind: 35, Variant: 2, UsesVariant: true}, desc)
	assert.Equal(t, 3, amount)
}

func TestDefaultLimits(t *testing.T) {
	assert.Equal(t, 64, DefaultLimits().MaxStack)
	assert.True(t, DefaultLimits().Valid())
	assert.False(t, Limits{}.Valid())
}
