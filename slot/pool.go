package slot

import (
	"iter"

	"github.com/pkg/errors"
)

// Pool allocates and recycles fixed-size slots over a growable backing
// store. Freed slots are reused lowest-index-first: allocations and
// releases tend to come in batches, and handing out the smallest free
// index keeps new elements clustered next to already-live ones instead of
// scattering them across the store.
//
// A Pool is not safe for concurrent use. Callers needing multiple threads
// must use one pool per thread or external locking.
type Pool[T any] struct {
	store   backingStore[T]
	free    *freeSet
	gens    []uint32 // bumped on release; validated by handles
	live    int
	backing Backing
	initial int
}

// NewPool creates an empty pool. With the Segmented backing, element
// addresses are stable for the life of the pool; with the Array backing,
// growth may relocate elements. Panics if initialCapacity < 1.
func NewPool[T any](backing Backing, initialCapacity int) *Pool[T] {
	return &Pool[T]{
		store:   newBackingStore[T](backing, initialCapacity),
		free:    newFreeSet(),
		backing: backing,
		initial: initialCapacity,
	}
}

// Allocate stores value in the smallest free slot, reserving a new slot
// from the backing store only when no freed slot is available. Returns
// the slot index, which stays valid until the slot is released.
func (p *Pool[T]) Allocate(value T) int {
	index, ok := p.free.popMin()
	if !ok {
		index = p.store.reserve()
		if index == len(p.gens) {
			p.gens = append(p.gens, 0)
		}
	}
	*p.store.ptr(index) = value
	p.live++
	return index
}

// Release marks the slot free and makes it available for reuse. The
// stored value is left as-is, not zeroed. Capacity never shrinks.
// Returns ErrDoubleRelease if the slot is already free, ErrOutOfRange if
// the index was never reserved.
func (p *Pool[T]) Release(index int) error {
	if index < 0 || index >= p.store.size() {
		return errors.Wrapf(ErrOutOfRange, "release of index %d with %d reserved", index, p.store.size())
	}
	if p.free.contains(index) {
		return errors.Wrapf(ErrDoubleRelease, "slot %d", index)
	}
	p.free.insert(index)
	p.gens[index]++
	p.live--
	return nil
}

// Get returns a pointer to the value in an occupied slot. Returns
// ErrNotOccupied for a freed slot, ErrOutOfRange for an index that was
// never reserved.
func (p *Pool[T]) Get(index int) (*T, error) {
	if index < 0 || index >= p.store.size() {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d with %d reserved", index, p.store.size())
	}
	if p.free.contains(index) {
		return nil, errors.Wrapf(ErrNotOccupied, "slot %d", index)
	}
	return p.store.ptr(index), nil
}

// at returns the slot's value pointer without occupancy checks. Callers
// must hold an index they know to be occupied.
func (p *Pool[T]) at(index int) *T {
	return p.store.ptr(index)
}

// Count returns the number of occupied slots.
func (p *Pool[T]) Count() int {
	return p.live
}

// Cap returns the number of reserved slots, occupied or free.
func (p *Pool[T]) Cap() int {
	return p.store.size()
}

// All iterates the occupied slots in ascending index order. The sequence
// is restartable; mutating the pool during iteration is undefined.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < p.store.size(); i++ {
			if p.free.contains(i) {
				continue
			}
			if !yield(i, p.store.ptr(i)) {
				return
			}
		}
	}
}

// Reset releases every slot and drops the backing storage, returning the
// pool to its freshly constructed state. All outstanding slot indices,
// handles and node references become invalid.
func (p *Pool[T]) Reset() {
	for i := range p.gens {
		p.gens[i]++
	}
	p.store = newBackingStore[T](p.backing, p.initial)
	p.free = newFreeSet()
	p.live = 0
}

// generation returns the current generation of a reserved slot.
func (p *Pool[T]) generation(index int) uint32 {
	return p.gens[index]
}
