// Package sorting provides the classic comparison sorts over generic
// slices, each ordered by a compare.Func comparator.
//
// What
//
//   - Bubble, Insertion, Selection: the O(n²) exchange sorts, in place.
//   - Merge: stable O(n log n), allocates one O(n) scratch buffer.
//   - Quick: in-place O(n log n) average, Hoare partition around a
//     median-of-three pivot, smaller-half recursion for an O(log n) stack.
//   - Heap: in-place O(n log n) via max-heap sift-down.
//   - IsSorted reports whether a slice already obeys the comparator.
//
// Usage
//
//	data := []int{5, 2, 9, 1}
//	sorting.Quick(data, compare.Ordered[int])
//
// Every sort accepts any element type; the comparator carries the order:
//
//	sorting.Merge(people, func(a, b Person) int { return a.Age - b.Age })
package sorting
