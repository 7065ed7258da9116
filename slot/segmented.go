package slot

import (
	"math/bits"

	"github.com/pkg/errors"
)

// SegmentedStore is growable backing storage made of power-of-two sized
// segments. Segment k holds initial<<k elements, so appending a segment
// doubles the headroom while every previously reserved element keeps its
// address for the lifetime of the store. There is no shrink operation.
type SegmentedStore[T any] struct {
	segments [][]T
	initial  int // capacity of segment 0
	reserved int // indices handed out so far
	capacity int // sum of segment lengths
}

// NewSegmentedStore creates an empty store whose first segment will hold
// initialCapacity elements. Panics if initialCapacity < 1.
func NewSegmentedStore[T any](initialCapacity int) *SegmentedStore[T] {
	if initialCapacity < 1 {
		panic("slot: initial capacity must be at least 1")
	}
	return &SegmentedStore[T]{initial: initialCapacity}
}

// ReserveNext hands out the next global index, appending a segment of
// double the previous segment's capacity when the store is full.
// Amortized O(1); existing elements never move.
func (s *SegmentedStore[T]) ReserveNext() int {
	if s.reserved == s.capacity {
		segCap := s.initial
		if n := len(s.segments); n > 0 {
			segCap = len(s.segments[n-1]) * 2
		}
		s.segments = append(s.segments, make([]T, segCap))
		s.capacity += segCap
	}
	index := s.reserved
	s.reserved++
	return index
}

// locate maps a global index to its (segment, offset) pair in constant
// time. With q = index/initial + 1, the segment is floor(log2 q) because
// the cumulative capacity through segment k is initial*(2^(k+1)-1).
func (s *SegmentedStore[T]) locate(index int) (segment, offset int) {
	segment = bits.Len(uint(index/s.initial+1)) - 1
	offset = index - s.initial*((1<<segment)-1)
	return segment, offset
}

// At returns a pointer to the element at a previously reserved index.
// The pointer stays valid across any number of later ReserveNext calls.
// Returns ErrOutOfRange for an index that was never reserved.
func (s *SegmentedStore[T]) At(index int) (*T, error) {
	if index < 0 || index >= s.reserved {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d with %d reserved", index, s.reserved)
	}
	segment, offset := s.locate(index)
	return &s.segments[segment][offset], nil
}

// Len returns the number of reserved indices.
func (s *SegmentedStore[T]) Len() int {
	return s.reserved
}

// Cap returns the total capacity across all segments.
func (s *SegmentedStore[T]) Cap() int {
	return s.capacity
}

// Segments returns the number of segments allocated so far.
func (s *SegmentedStore[T]) Segments() int {
	return len(s.segments)
}
