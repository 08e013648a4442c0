// Package searching provides generic slice search over a compare.Func
// comparator.
//
// What
//
//   - Binary: O(log n) lower-bound search over a slice already sorted
//     under the same comparator. Returns the leftmost index holding the
//     target, or the index where it would be inserted to keep order.
//   - Linear: O(n) front-to-back scan for unsorted data. Returns the
//     first matching index or -1.
//
// Usage
//
//	data := []int{1, 3, 3, 7, 9}
//	i, found := searching.Binary(data, 3, compare.Ordered[int]) // 1, true
//	i, found = searching.Binary(data, 5, compare.Ordered[int])  // 3, false
//
// Binary's behavior is undefined when the slice is not sorted under
// cmp; use Linear there instead.
package searching
