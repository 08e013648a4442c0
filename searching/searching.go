package searching

import "github.com/hermanconnor/dsa-go/compare"

// Binary locates target in s, which must be sorted under cmp. It
// returns the leftmost index where target sits and true, or the index
// where target would be inserted and false. The half-open window
// [lo, hi) shrinks until it collapses on the lower bound.
//
// Complexity: O(log n).
func Binary[T any](s []T, target T, cmp compare.Func[T]) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(s[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(s) && cmp(s[lo], target) == 0
}

// Linear scans s front to back and returns the first index where cmp
// reports equality, or -1 and false when target is absent. The slice
// needs no particular order.
//
// Complexity: O(n).
func Linear[T any](s []T, target T, cmp compare.Func[T]) (int, bool) {
	for i := range s {
		if cmp(s[i], target) == 0 {
			return i, true
		}
	}
	return -1, false
}
