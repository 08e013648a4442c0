package sorting

import "github.com/hermanconnor/dsa-go/compare"

// Quick sorts s in place with quicksort: Hoare partitioning around a
// median-of-three pivot. Recursion always descends into the smaller
// partition and iterates over the larger, bounding the stack at
// O(log n) even on adversarial input.
//
// Complexity: O(n log n) average, O(n²) worst. Not stable.
func Quick[T any](s []T, cmp compare.Func[T]) {
	quickSort(s, 0, len(s)-1, cmp)
}

func quickSort[T any](s []T, lo, hi int, cmp compare.Func[T]) {
	for lo < hi {
		p := partition(s, lo, hi, cmp)
		if p-lo < hi-p {
			quickSort(s, lo, p, cmp)
			lo = p + 1
		} else {
			quickSort(s, p+1, hi, cmp)
			hi = p
		}
	}
}

// partition splits s[lo..hi] around the median of its first, middle, and
// last elements, returning j such that every element of s[lo..j] is <=
// every element of s[j+1..hi]. Hoare's scheme: two indexes run toward
// each other, swapping misplaced pairs.
func partition[T any](s []T, lo, hi int, cmp compare.Func[T]) int {
	pivot := median3(s[lo], s[lo+(hi-lo)/2], s[hi], cmp)

	i, j := lo-1, hi+1
	for {
		i++
		for cmp(s[i], pivot) < 0 {
			i++
		}
		j--
		for cmp(s[j], pivot) > 0 {
			j--
		}
		if i >= j {
			return j
		}
		s[i], s[j] = s[j], s[i]
	}
}

// median3 returns the middle value of a, b, c under cmp.
func median3[T any](a, b, c T, cmp compare.Func[T]) T {
	if cmp(b, a) < 0 {
		a, b = b, a
	}
	// a <= b
	if cmp(c, b) >= 0 {
		return b
	}
	// c < b
	if cmp(c, a) < 0 {
		return a
	}

	return c
}
