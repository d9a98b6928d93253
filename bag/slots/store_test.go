package slots

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/blockbag/pkg/types"
)

// mockSource is a test implementation of Source.
type mockSource struct {
	items         []*types.Stack
	capacity      int
	loads         int
	sets          []int
	shouldFailAt  int // SetSlot index that fails; -1 for never
	shouldFailGet bool
}

func newMockSource(items ...*types.Stack) *mockSource {
	return &mockSource{items: items, capacity: len(items), shouldFailAt: -1}
}

func (m *mockSource) Contents() ([]*types.Stack, error) {
	m.loads++
	if m.shouldFailGet {
		return nil, errors.New("load failed")
	}
	return m.items, nil
}

func (m *mockSource) Capacity() int { return m.capacity }

func (m *mockSource) SetSlot(index int, s *types.Stack) error {
	if index == m.shouldFailAt {
		return errors.New("write failed")
	}
	m.sets = append(m.sets, index)
	m.items[index] = s
	return nil
}

func Test_Store_EnsureLoaded_Idempotent(t *testing.T) {
	src := newMockSource(types.NewStack(1, 0, 5), nil)
	s := NewStore(src)

	require.False(t, s.Loaded())
	require.NoError(t, s.EnsureLoaded())
	require.NoError(t, s.EnsureLoaded())

	assert.Equal(t, 1, src.loads)
	assert.True(t, s.Loaded())
	assert.Equal(t, 2, s.Len())
}

func Test_Store_SnapshotIsOwned(t *testing.T) {
	src := newMockSource(types.NewStack(1, 0, 5))
	s := NewStore(src)
	require.NoError(t, s.EnsureLoaded())

	s.Slot(0).Quantity = 3
	s.Touch(0)

	assert.Equal(t, types.Quantity(5), src.items[0].Quantity, "source must not see in-memory changes")
}

func Test_Store_Flush_NeverLoaded(t *testing.T) {
	src := newMockSource(types.NewStack(1, 0, 5))
	s := NewStore(src)

	n, err := s.Flush()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, src.sets)
	assert.Zero(t, src.loads)
}

func Test_Store_Flush_WritesEverySlotAndUnloads(t *testing.T) {
	src := newMockSource(types.NewStack(1, 0, 5), nil, types.NewStack(2, 0, 1))
	s := NewStore(src)
	require.NoError(t, s.EnsureLoaded())

	s.Set(1, types.NewStack(3, 0, 7))

	n, err := s.Flush()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{0, 1, 2}, src.sets, "flush writes every slot, not just dirty ones")
	assert.Equal(t, types.Quantity(7), src.items[1].Quantity)

	assert.False(t, s.Loaded())
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Snapshot())
}

func Test_Store_Flush_ClampsToCapacity(t *testing.T) {
	src := newMockSource(nil, nil, nil, nil)
	src.capacity = 2
	s := NewStore(src)
	require.NoError(t, s.EnsureLoaded())

	n, err := s.Flush()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{0, 1}, src.sets)
}

func Test_Store_Flush_WriteFailureKeepsSnapshot(t *testing.T) {
	src := newMockSource(nil, nil, nil)
	src.shouldFailAt = 1
	s := NewStore(src)
	require.NoError(t, s.EnsureLoaded())

	n, err := s.Flush()
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSource)
	assert.Equal(t, 1, n)
	assert.True(t, s.Loaded(), "snapshot kept for retry")

	src.shouldFailAt = -1
	n, err = s.Flush()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func Test_Store_LoadFailure(t *testing.T) {
	src := newMockSource()
	src.shouldFailGet = true
	s := NewStore(src)

	err := s.EnsureLoaded()
	require.ErrorIs(t, err, types.ErrSource)
	assert.False(t, s.Loaded())
}

func Test_Store_DirtySlots_Sorted(t *testing.T) {
	src := newMockSource(nil, nil, nil, nil)
	s := NewStore(src)
	require.NoError(t, s.EnsureLoaded())

	s.Set(3, types.NewStack(1, 0, 1))
	s.Touch(0)
	s.Set(3, nil)

	assert.Equal(t, []int{0, 3}, s.DirtySlots())
}

func Test_Store_Reset_ReloadsFromSource(t *testing.T) {
	src := newMockSource(types.NewStack(1, 0, 5))
	s := NewStore(src)
	require.NoError(t, s.EnsureLoaded())

	s.Set(0, nil)
	s.Reset()
	require.NoError(t, s.EnsureLoaded())

	assert.Equal(t, 2, src.loads)
	require.NotNil(t, s.Slot(0))
	assert.Equal(t, types.Quantity(5), s.Slot(0).Quantity)
	assert.Empty(t, s.DirtySlots())
}
