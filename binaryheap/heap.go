package binaryheap

import "github.com/hermanconnor/dsa-go/compare"

// Heap is a binary min-heap under its comparator, laid out in the classic
// array form: the children of index i live at 2i+1 and 2i+2. The zero
// value is not usable; construct with New or FromSlice.
type Heap[T any] struct {
	items []T
	cmp   compare.Func[T]
}

// New returns an empty Heap ordered by cmp, applying any functional
// Options. It returns ErrNilComparator when cmp is nil and
// ErrOptionViolation when an option carried an invalid value.
func New[T any](cmp compare.Func[T], opts ...Option) (*Heap[T], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Heap[T]{items: make([]T, 0, o.Capacity), cmp: cmp}, nil
}

// FromSlice builds a Heap holding items in O(n) by sifting down from the
// last internal node. The slice is copied; the caller's copy is left
// untouched.
func FromSlice[T any](cmp compare.Func[T], items []T) (*Heap[T], error) {
	if cmp == nil {
		return nil, ErrNilComparator
	}

	h := &Heap[T]{items: append([]T(nil), items...), cmp: cmp}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h, nil
}

// Push adds v to the heap.
//
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the comparator-least element; ok is false when
// the heap is empty.
//
// Complexity: O(log n).
func (h *Heap[T]) Pop() (v T, ok bool) {
	if len(h.items) == 0 {
		return v, false
	}

	v = h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero // drop the reference for the GC
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return v, true
}

// Peek returns the comparator-least element without removing it; ok is
// false when the heap is empty.
//
// Complexity: O(1).
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.items) == 0 {
		return v, false
	}

	return h.items[0], true
}

// Len returns the number of stored elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// siftUp bubbles the element at i toward the root until its parent is
// not greater.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) >= 0 {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown pushes the element at i toward the leaves, always swapping
// with the smaller child, until the heap order holds.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		least := i
		if left < n && h.cmp(h.items[left], h.items[least]) < 0 {
			least = left
		}
		if right < n && h.cmp(h.items[right], h.items[least]) < 0 {
			least = right
		}
		if least == i {
			return
		}
		h.items[i], h.items[least] = h.items[least], h.items[i]
		i = least
	}
}
