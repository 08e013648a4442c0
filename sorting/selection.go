package sorting

import "github.com/hermanconnor/dsa-go/compare"

// Selection sorts s in place by repeatedly swapping the least remaining
// element into the front of the unsorted suffix. It performs at most n-1
// swaps, the fewest of the quadratic sorts.
//
// Complexity: O(n²) in every case. Not stable.
func Selection[T any](s []T, cmp compare.Func[T]) {
	for i := 0; i < len(s)-1; i++ {
		least := i
		for j := i + 1; j < len(s); j++ {
			if cmp(s[j], s[least]) < 0 {
				least = j
			}
		}
		if least != i {
			s[i], s[least] = s[least], s[i]
		}
	}
}
