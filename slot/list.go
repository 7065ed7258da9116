package slot

import (
	"iter"

	"github.com/pkg/errors"
)

// nilNode marks the absence of a neighbor in a list node.
const nilNode = -1

type node[T any] struct {
	value T
	prev  int
	next  int
}

// List is a doubly linked list whose nodes are allocated from a pool the
// list owns, instead of one heap allocation per node. Released node slots
// are reused lowest-index-first, so a list that churns stays clustered in
// a small region of the pool.
type List[T any] struct {
	pool *Pool[node[T]]
	head int
	tail int
}

// NodeRef identifies one list node for O(1) removal or insertion next to
// it. A ref goes stale once its node is removed; stale refs are rejected
// with ErrNotFound rather than touching reused storage.
type NodeRef[T any] struct {
	list  *List[T]
	index int
	gen   uint32
}

// NewList creates an empty list over a fresh node pool.
func NewList[T any](backing Backing, initialCapacity int) *List[T] {
	return &List[T]{
		pool: NewPool[node[T]](backing, initialCapacity),
		head: nilNode,
		tail: nilNode,
	}
}

func (l *List[T]) ref(index int) NodeRef[T] {
	return NodeRef[T]{list: l, index: index, gen: l.pool.generation(index)}
}

// resolve checks that ref names a live node of this list.
func (l *List[T]) resolve(ref NodeRef[T]) (int, error) {
	if ref.list != l {
		return nilNode, errors.Wrap(ErrNotFound, "ref from another list")
	}
	if ref.index < 0 || ref.index >= len(l.pool.gens) || l.pool.generation(ref.index) != ref.gen {
		return nilNode, errors.Wrapf(ErrNotFound, "node %d", ref.index)
	}
	return ref.index, nil
}

// PushFront links value at the head of the list.
func (l *List[T]) PushFront(value T) NodeRef[T] {
	index := l.pool.Allocate(node[T]{value: value, prev: nilNode, next: l.head})
	if l.head != nilNode {
		l.pool.at(l.head).prev = index
	} else {
		l.tail = index
	}
	l.head = index
	return l.ref(index)
}

// PushBack links value at the tail of the list.
func (l *List[T]) PushBack(value T) NodeRef[T] {
	index := l.pool.Allocate(node[T]{value: value, prev: l.tail, next: nilNode})
	if l.tail != nilNode {
		l.pool.at(l.tail).next = index
	} else {
		l.head = index
	}
	l.tail = index
	return l.ref(index)
}

// InsertAfter links value immediately after the node named by ref.
func (l *List[T]) InsertAfter(ref NodeRef[T], value T) (NodeRef[T], error) {
	at, err := l.resolve(ref)
	if err != nil {
		return NodeRef[T]{}, err
	}
	next := l.pool.at(at).next
	index := l.pool.Allocate(node[T]{value: value, prev: at, next: next})
	l.pool.at(at).next = index
	if next != nilNode {
		l.pool.at(next).prev = index
	} else {
		l.tail = index
	}
	return l.ref(index), nil
}

// InsertBefore links value immediately before the node named by ref.
func (l *List[T]) InsertBefore(ref NodeRef[T], value T) (NodeRef[T], error) {
	at, err := l.resolve(ref)
	if err != nil {
		return NodeRef[T]{}, err
	}
	prev := l.pool.at(at).prev
	index := l.pool.Allocate(node[T]{value: value, prev: prev, next: at})
	l.pool.at(at).prev = index
	if prev != nilNode {
		l.pool.at(prev).next = index
	} else {
		l.head = index
	}
	return l.ref(index), nil
}

// Remove unlinks the node named by ref and releases its slot back to the
// pool. Returns ErrNotFound if ref belongs to another list or its node
// was already removed.
func (l *List[T]) Remove(ref NodeRef[T]) error {
	index, err := l.resolve(ref)
	if err != nil {
		return err
	}
	n := l.pool.at(index)
	if n.prev != nilNode {
		l.pool.at(n.prev).next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nilNode {
		l.pool.at(n.next).prev = n.prev
	} else {
		l.tail = n.prev
	}
	if err := l.pool.Release(index); err != nil {
		panic("slot: list links out of sync with pool")
	}
	return nil
}

// Value returns a pointer to the value of the node named by ref.
func (l *List[T]) Value(ref NodeRef[T]) (*T, error) {
	index, err := l.resolve(ref)
	if err != nil {
		return nil, err
	}
	return &l.pool.at(index).value, nil
}

// Front returns the first value, or (nil, false) on an empty list.
func (l *List[T]) Front() (*T, bool) {
	if l.head == nilNode {
		return nil, false
	}
	return &l.pool.at(l.head).value, true
}

// Back returns the last value, or (nil, false) on an empty list.
func (l *List[T]) Back() (*T, bool) {
	if l.tail == nilNode {
		return nil, false
	}
	return &l.pool.at(l.tail).value, true
}

// Len returns the number of nodes. The node pool backs nothing else, so
// this is exactly the pool's live count.
func (l *List[T]) Len() int {
	return l.pool.Count()
}

// Forward iterates values from head to tail. Restartable; structural
// mutation during iteration is undefined.
func (l *List[T]) Forward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := l.head; i != nilNode; {
			n := l.pool.at(i)
			if !yield(&n.value) {
				return
			}
			i = n.next
		}
	}
}

// Backward iterates values from tail to head.
func (l *List[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := l.tail; i != nilNode; {
			n := l.pool.at(i)
			if !yield(&n.value) {
				return
			}
			i = n.prev
		}
	}
}

// CollectStats returns occupancy counters for the node pool.
func (l *List[T]) CollectStats() Stats {
	return l.pool.CollectStats()
}

// Clear removes every node and drops the backing storage. All outstanding
// refs become stale.
func (l *List[T]) Clear() {
	l.pool.Reset()
	l.head = nilNode
	l.tail = nilNode
}
