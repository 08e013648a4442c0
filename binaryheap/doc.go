// Package binaryheap provides a generic array-backed binary heap ordered
// by a caller-supplied comparator.
//
// What
//
//   - Heap[T] keeps the comparator-least element at the top; pair it with
//     compare.Reverse for max-heap behavior.
//   - Push and Pop are O(log n), Peek O(1), FromSlice builds a heap from
//     existing items in O(n).
//
// Usage
//
//	h, err := binaryheap.New(compare.Ordered[int])
//	if err != nil { ... }
//	h.Push(3)
//	h.Push(1)
//	v, ok := h.Pop() // 1, true
//
// Errors
//
//   - ErrNilComparator  if no comparator is supplied.
//   - ErrOptionViolation if an option carried an invalid value.
//
// A Heap is not safe for concurrent use; callers serialize access.
package binaryheap
