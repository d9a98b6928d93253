package alloc_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockbag/bag/alloc"
	"github.com/joshuapare/blockbag/bag/source"
	"github.com/joshuapare/blockbag/pkg/itemtype"
	"github.com/joshuapare/blockbag/pkg/types"
)

// total sums bounded quantities matching desc in the working slots.
func total(b *alloc.Bag, desc types.ItemDescriptor) int {
	n := 0
	for i := 0; i < b.Slots().Len(); i++ {
		s := b.Slots().Slot(i)
		if s != nil && desc.Matches(s.Kind, s.Variant) {
			n += int(s.Quantity)
		}
	}
	return n
}

func hasFreeSlot(b *alloc.Bag) bool {
	for i := 0; i < b.Slots().Len(); i++ {
		if b.Slots().Slot(i) == nil {
			return true
		}
	}
	return false
}

// Test_Property_QuantitiesConserved runs random fetch/store sequences and
// checks that every slot stays within bounds and that the per-item total
// moves exactly by what each call reports.
func Test_Property_QuantitiesConserved(t *testing.T) {
	lookup := itemtype.Default()
	descs := []types.ItemDescriptor{
		types.NewDescriptor(itemtype.Stone, 0, lookup),
		types.NewDescriptor(itemtype.Wool, 1, lookup),
		types.NewDescriptor(itemtype.Wool, 14, lookup),
		types.NewDescriptor(itemtype.Dirt, 0, lookup),
	}

	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*31))
		inv := source.NewInventory(6)
		b := alloc.NewForSource(inv, alloc.Options{Lookup: lookup})
		require.NoError(t, b.Slots().EnsureLoaded())

		for step := range 500 {
			desc := descs[rng.IntN(len(descs))]
			before := total(b, desc)

			if rng.IntN(2) == 0 {
				err := b.Fetch(desc)
				switch {
				case err == nil:
					require.Equal(t, before-1, total(b, desc), "seed %d step %d: fetch", seed, step)
				case errors.Is(err, alloc.ErrOutOfStock):
					require.Zero(t, before, "seed %d step %d: out of stock with %d present", seed, step, before)
				default:
					t.Fatalf("seed %d step %d: unexpected fetch error: %v", seed, step, err)
				}
			} else {
				amount := 1 + rng.IntN(types.MaxStackSize)
				err := b.Store(desc, amount)
				switch {
				case err == nil:
					require.Equal(t, before+amount, total(b, desc), "seed %d step %d: store", seed, step)
				case errors.Is(err, alloc.ErrOutOfSpace):
					after := total(b, desc)
					require.GreaterOrEqual(t, after, before)
					require.Less(t, after, before+amount)
					require.False(t, hasFreeSlot(b), "seed %d step %d: out of space with a free slot", seed, step)
				default:
					t.Fatalf("seed %d step %d: unexpected store error: %v", seed, step, err)
				}
			}

			require.Equal(t, 6, b.Slots().Len())
			for i := 0; i < b.Slots().Len(); i++ {
				if s := b.Slots().Slot(i); s != nil {
					require.GreaterOrEqual(t, int(s.Quantity), 1, "seed %d step %d slot %d", seed, step, i)
					require.LessOrEqual(t, int(s.Quantity), types.MaxStackSize, "seed %d step %d slot %d", seed, step, i)
				}
			}
		}

		// Flushed totals match the working copy.
		want := make([]int, len(descs))
		for i, d := range descs {
			want[i] = total(b, d)
		}
		_, err := b.Flush()
		require.NoError(t, err)
		for i, d := range descs {
			require.Equal(t, want[i], inv.Count(d))
		}
	}
}
