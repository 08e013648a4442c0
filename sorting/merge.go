package sorting

import "github.com/hermanconnor/dsa-go/compare"

// Merge sorts s with a top-down merge sort. One scratch buffer of len(s)
// is allocated up front and shared by every merge level.
//
// Complexity: O(n log n) in every case, O(n) extra memory. Stable.
func Merge[T any](s []T, cmp compare.Func[T]) {
	if len(s) < 2 {
		return
	}
	mergeSort(s, make([]T, len(s)), cmp)
}

// mergeSort sorts s using scratch (same length) as the merge target.
func mergeSort[T any](s, scratch []T, cmp compare.Func[T]) {
	if len(s) < 2 {
		return
	}

	mid := len(s) / 2
	mergeSort(s[:mid], scratch[:mid], cmp)
	mergeSort(s[mid:], scratch[mid:], cmp)

	// merge the two sorted halves into scratch, then copy back; ties
	// take the left element, which is what keeps the sort stable
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if cmp(s[j], s[i]) < 0 {
			scratch[k] = s[j]
			j++
		} else {
			scratch[k] = s[i]
			i++
		}
		k++
	}
	k += copy(scratch[k:], s[i:mid])
	copy(scratch[k:], s[j:])
	copy(s, scratch)
}
