package sorting

import "github.com/hermanconnor/dsa-go/compare"

// Bubble sorts s in place by repeatedly swapping adjacent out-of-order
// pairs. Each pass floats the largest unsorted element to the end; a
// pass without swaps ends the sort early.
//
// Complexity: O(n²) worst, O(n) on already-sorted input. Stable.
func Bubble[T any](s []T, cmp compare.Func[T]) {
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if cmp(s[i], s[i+1]) > 0 {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
