package sorting

import "github.com/hermanconnor/dsa-go/compare"

// Heap sorts s in place with heapsort: build a max-heap bottom-up, then
// repeatedly swap the root behind a shrinking heap boundary and restore
// the heap over the prefix.
//
// Complexity: O(n log n) in every case, O(1) extra memory. Not stable.
func Heap[T any](s []T, cmp compare.Func[T]) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		siftDown(s, i, len(s), cmp)
	}
	for end := len(s) - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, cmp)
	}
}

// siftDown pushes s[i] toward the leaves of the max-heap over s[:n],
// swapping with the greater child until heap order holds.
func siftDown[T any](s []T, i, n int, cmp compare.Func[T]) {
	for {
		top := i
		if l := 2*i + 1; l < n && cmp(s[l], s[top]) > 0 {
			top = l
		}
		if r := 2*i + 2; r < n && cmp(s[r], s[top]) > 0 {
			top = r
		}
		if top == i {
			return
		}
		s[i], s[top] = s[top], s[i]
		i = top
	}
}
