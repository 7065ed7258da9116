package slot

import "github.com/bits-and-blooms/bitset"

// freeSet tracks the free slot indices of a Pool. It is a bitmap with a
// next-free cursor: popMin always returns the smallest free index, which
// is what gives the pool its lowest-index-first reuse order. insert,
// contains and popMin are all O(1) amortized word scans.
type freeSet struct {
	bits *bitset.BitSet
	size int
	next uint // lower bound on the smallest set bit
}

func newFreeSet() *freeSet {
	return &freeSet{bits: bitset.New(64)}
}

func (f *freeSet) insert(index int) {
	f.bits.Set(uint(index))
	f.size++
	if uint(index) < f.next {
		f.next = uint(index)
	}
}

func (f *freeSet) contains(index int) bool {
	return f.bits.Test(uint(index))
}

func (f *freeSet) popMin() (int, bool) {
	if f.size == 0 {
		return 0, false
	}
	index, ok := f.bits.NextSet(f.next)
	if !ok {
		return 0, false
	}
	f.bits.Clear(index)
	f.size--
	// index was the minimum, so every bit below index+1 is now clear.
	f.next = index + 1
	return int(index), true
}

func (f *freeSet) len() int {
	return f.size
}
