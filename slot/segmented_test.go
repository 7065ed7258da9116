package slot_test

import (
	"fmt"
	"testing"

	"github.com/plus3/slotkit/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentedStoreReserveSequential(t *testing.T) {
	store := slot.NewSegmentedStore[int](4)

	for i := 0; i < 20; i++ {
		assert.Equal(t, i, store.ReserveNext())
	}
	assert.Equal(t, 20, store.Len())
}

func TestSegmentedStoreGrowthShape(t *testing.T) {
	tests := []struct {
		initial int
	}{
		{1},
		{2},
		{4},
		{5},
		{64},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("c0=%d", tt.initial), func(t *testing.T) {
			store := slot.NewSegmentedStore[int](tt.initial)

			// Filling two segments plus one element must produce exactly
			// three segments of capacity c0, 2*c0 and 4*c0.
			for i := 0; i < 3*tt.initial+1; i++ {
				store.ReserveNext()
			}

			assert.Equal(t, 3, store.Segments())
			assert.Equal(t, 7*tt.initial, store.Cap())
			assert.Equal(t, 3*tt.initial+1, store.Len())
		})
	}
}

func TestSegmentedStoreAddressStability(t *testing.T) {
	store := slot.NewSegmentedStore[Particle](2)

	first := store.ReserveNext()
	ptr, err := store.At(first)
	require.NoError(t, err)
	ptr.X = 42

	// Growth through many more segments must not move the element.
	for i := 0; i < 10_000; i++ {
		store.ReserveNext()
	}

	again, err := store.At(first)
	require.NoError(t, err)
	assert.Same(t, ptr, again)
	assert.Equal(t, float32(42), again.X)
}

func TestSegmentedStoreValuesSurviveGrowth(t *testing.T) {
	store := slot.NewSegmentedStore[int](3)

	for i := 0; i < 500; i++ {
		index := store.ReserveNext()
		ptr, err := store.At(index)
		require.NoError(t, err)
		*ptr = i * i
	}

	for i := 0; i < 500; i++ {
		ptr, err := store.At(i)
		require.NoError(t, err)
		assert.Equal(t, i*i, *ptr)
	}
}

func TestSegmentedStoreOutOfRange(t *testing.T) {
	store := slot.NewSegmentedStore[int](4)
	store.ReserveNext()
	store.ReserveNext()

	_, err := store.At(2)
	assert.ErrorIs(t, err, slot.ErrOutOfRange)

	_, err = store.At(-1)
	assert.ErrorIs(t, err, slot.ErrOutOfRange)

	// Reserved but unfilled headroom is still out of range.
	_, err = store.At(3)
	assert.ErrorIs(t, err, slot.ErrOutOfRange)
}

func TestSegmentedStoreInvalidCapacity(t *testing.T) {
	assert.Panics(t, func() {
		slot.NewSegmentedStore[int](0)
	})
}
