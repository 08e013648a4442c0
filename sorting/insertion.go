package sorting

import "github.com/hermanconnor/dsa-go/compare"

// Insertion sorts s in place by growing a sorted prefix: each element is
// shifted left until it meets one that is not greater.
//
// Complexity: O(n²) worst, O(n) on nearly-sorted input. Stable.
func Insertion[T any](s []T, cmp compare.Func[T]) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && cmp(s[j], v) > 0 {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}
