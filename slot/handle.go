package slot

import "github.com/pkg/errors"

// Handle is a revocable, non-owning borrow of one pool slot. It carries
// the generation the slot had when the handle was created; once the slot
// is released (directly or through another handle) the generation moves
// on and the handle goes stale, so use-after-release is detected instead
// of silently reading reused storage.
type Handle[T any] struct {
	pool  *Pool[T]
	index int
	gen   uint32
}

// AllocateHandle allocates a slot for value and returns a handle to it.
func (p *Pool[T]) AllocateHandle(value T) Handle[T] {
	index := p.Allocate(value)
	return Handle[T]{pool: p, index: index, gen: p.gens[index]}
}

// Handle wraps an occupied slot index in a handle. Returns ErrNotOccupied
// or ErrOutOfRange when the index does not name an occupied slot.
func (p *Pool[T]) Handle(index int) (Handle[T], error) {
	if _, err := p.Get(index); err != nil {
		return Handle[T]{}, err
	}
	return Handle[T]{pool: p, index: index, gen: p.gens[index]}, nil
}

// Index returns the slot index the handle refers to.
func (h Handle[T]) Index() int {
	return h.index
}

// Access returns a pointer to the slot's value. Returns ErrNotOccupied if
// the handle is stale, i.e. the slot was released after the handle was
// created, even if the slot has since been reallocated.
func (h Handle[T]) Access() (*T, error) {
	if err := h.validate(); err != nil {
		return nil, errors.Wrap(ErrNotOccupied, err.Error())
	}
	return h.pool.at(h.index), nil
}

// Release frees the slot behind the handle. A second release through any
// handle to the same slot returns ErrDoubleRelease.
func (h Handle[T]) Release() error {
	if err := h.validate(); err != nil {
		return errors.Wrap(ErrDoubleRelease, err.Error())
	}
	return h.pool.Release(h.index)
}

func (h Handle[T]) validate() error {
	if h.pool == nil {
		return errors.New("zero handle")
	}
	if h.index >= len(h.pool.gens) || h.pool.gens[h.index] != h.gen {
		return errors.Errorf("stale handle for slot %d", h.index)
	}
	return nil
}
