package sorting

import "github.com/hermanconnor/dsa-go/compare"

// IsSorted reports whether s is in non-decreasing order under cmp.
//
// Complexity: O(n).
func IsSorted[T any](s []T, cmp compare.Func[T]) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return false
		}
	}

	return true
}
