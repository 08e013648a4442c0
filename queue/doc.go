// Package queue provides a generic FIFO queue backed by a growable ring
// buffer.
//
// What
//
//   - Queue[T] stores values of any type in first-in, first-out order.
//   - Enqueue, Dequeue, and Peek are amortized O(1); the ring doubles in
//     place when full and never shrinks.
//   - WithCapacity pre-sizes the ring for workloads with a known bound.
//
// Usage
//
//	q, err := queue.New[string](queue.WithCapacity(64))
//	if err != nil {
//		// ErrOptionViolation: an option carried an invalid value
//	}
//	q.Enqueue("a")
//	v, ok := q.Dequeue() // "a", true
//
// A Queue is not safe for concurrent use; callers serialize access.
package queue
