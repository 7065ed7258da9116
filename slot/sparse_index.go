package slot

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/kamstrup/intmap"
)

// SparseIndex associates sparse external uint64 ids (entity ids, network
// ids) with values stored in a pool it owns. Ids need not be contiguous
// or dense. At most one live entry exists per id; re-adding an id
// overwrites its value in place, keeping the slot index stable.
type SparseIndex[T any] struct {
	pool  *Pool[T]
	slots *intmap.Map[uint64, int]
	live  *roaring64.Bitmap
}

// NewSparseIndex creates an empty index over a fresh pool with the given
// backing and initial capacity.
func NewSparseIndex[T any](backing Backing, initialCapacity int) *SparseIndex[T] {
	return &SparseIndex[T]{
		pool:  NewPool[T](backing, initialCapacity),
		slots: intmap.New[uint64, int](initialCapacity),
		live:  roaring64.New(),
	}
}

// Add associates id with value. If id already has an entry the value is
// overwritten in the slot it already occupies, so pointers from Get stay
// valid across re-adds when the pool uses the Segmented backing.
func (x *SparseIndex[T]) Add(id uint64, value T) {
	if index, ok := x.slots.Get(id); ok {
		*x.pool.at(index) = value
		return
	}
	index := x.pool.Allocate(value)
	x.slots.Put(id, index)
	x.live.Add(id)
}

// Get returns a pointer to the value for id, or (nil, false) when id has
// no live entry. A missing id is not an error.
func (x *SparseIndex[T]) Get(id uint64) (*T, bool) {
	index, ok := x.slots.Get(id)
	if !ok {
		return nil, false
	}
	return x.pool.at(index), true
}

// Remove releases the slot for id and clears the mapping. Removing an
// absent id is a no-op and returns false.
func (x *SparseIndex[T]) Remove(id uint64) bool {
	index, ok := x.slots.Get(id)
	if !ok {
		return false
	}
	x.slots.Del(id)
	x.live.Remove(id)
	if err := x.pool.Release(index); err != nil {
		panic("slot: sparse index mapping out of sync with pool")
	}
	return true
}

// Count returns the number of live ids.
func (x *SparseIndex[T]) Count() int {
	return x.slots.Len()
}

// All iterates the live (id, value) pairs in ascending id order. The
// sequence is restartable; mutating the index during iteration is
// undefined.
func (x *SparseIndex[T]) All() iter.Seq2[uint64, *T] {
	return func(yield func(uint64, *T) bool) {
		it := x.live.Iterator()
		for it.HasNext() {
			id := it.Next()
			index, ok := x.slots.Get(id)
			if !ok {
				continue
			}
			if !yield(id, x.pool.at(index)) {
				return
			}
		}
	}
}

// CollectStats returns occupancy counters for the backing pool.
func (x *SparseIndex[T]) CollectStats() Stats {
	return x.pool.CollectStats()
}

// Clear removes every entry and drops the backing storage.
func (x *SparseIndex[T]) Clear() {
	x.pool.Reset()
	x.slots.Clear()
	x.live.Clear()
}
