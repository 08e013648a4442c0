package queue

// Queue is a FIFO container over a ring buffer. The zero value is not
// usable; construct with New.
type Queue[T any] struct {
	buf   []T
	head  int // index of the oldest element
	count int
}

// New returns an empty Queue, applying any number of functional Options.
// It returns ErrOptionViolation when an option carried an invalid value.
func New[T any](opts ...Option) (*Queue[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Queue[T]{buf: make([]T, o.Capacity)}, nil
}

// Enqueue appends v to the back of the queue, growing the ring when full.
//
// Complexity: amortized O(1).
func (q *Queue[T]) Enqueue(v T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = v
	q.count++
}

// Dequeue removes and returns the front element; ok is false when the
// queue is empty.
//
// Complexity: O(1).
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.count == 0 {
		return v, false
	}

	v = q.buf[q.head]
	var zero T
	q.buf[q.head] = zero // drop the reference for the GC
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return v, true
}

// Peek returns the front element without removing it; ok is false when
// the queue is empty.
//
// Complexity: O(1).
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.count == 0 {
		return v, false
	}

	return q.buf[q.head], true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the current ring size.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Clear empties the queue, keeping the ring allocation.
func (q *Queue[T]) Clear() {
	clear(q.buf)
	q.head, q.count = 0, 0
}

// grow doubles the ring, unrolling the two wrapped segments into order.
func (q *Queue[T]) grow() {
	size := 2 * len(q.buf)
	if size == 0 {
		size = defaultCapacity
	}

	next := make([]T, size)
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf, q.head = next, 0
}
