package slot

// Backing selects the storage strategy behind a Pool.
type Backing int

const (
	// Segmented backs the pool with a SegmentedStore. Element addresses
	// never move once allocated, at the cost of one extra indirection.
	Segmented Backing = iota

	// Array backs the pool with a plain slice. Growth may relocate the
	// whole array, so pointers obtained before an Allocate must be
	// re-fetched afterwards.
	Array
)

// backingStore is the type-erased growth surface a Pool allocates over.
type backingStore[T any] interface {
	reserve() int
	ptr(index int) *T // index must have been reserved
	size() int
	segments() int
}

func newBackingStore[T any](backing Backing, initialCapacity int) backingStore[T] {
	switch backing {
	case Segmented:
		return &segmentedBacking[T]{store: NewSegmentedStore[T](initialCapacity)}
	case Array:
		if initialCapacity < 1 {
			panic("slot: initial capacity must be at least 1")
		}
		return &arrayStore[T]{elems: make([]T, 0, initialCapacity)}
	default:
		panic("slot: unknown backing kind")
	}
}

type arrayStore[T any] struct {
	elems []T
}

func (a *arrayStore[T]) reserve() int {
	var zero T
	a.elems = append(a.elems, zero)
	return len(a.elems) - 1
}

func (a *arrayStore[T]) ptr(index int) *T { return &a.elems[index] }
func (a *arrayStore[T]) size() int        { return len(a.elems) }
func (a *arrayStore[T]) segments() int    { return 1 }

type segmentedBacking[T any] struct {
	store *SegmentedStore[T]
}

func (s *segmentedBacking[T]) reserve() int { return s.store.ReserveNext() }

func (s *segmentedBacking[T]) ptr(index int) *T {
	segment, offset := s.store.locate(index)
	return &s.store.segments[segment][offset]
}

func (s *segmentedBacking[T]) size() int     { return s.store.Len() }
func (s *segmentedBacking[T]) segments() int { return s.store.Segments() }
