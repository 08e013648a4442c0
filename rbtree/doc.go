// Package rbtree implements a generic red-black tree: a self-balancing
// binary search tree holding unique keys under a caller-supplied total
// order, with O(log n) insert, delete, and search.
//
// What
//
//   - Tree[T] stores keys of any type T, ordered by a Comparator[T];
//     NewOrdered builds one for the ordered built-in types directly.
//   - A single shared, permanently black sentinel stands in for every
//     absent child and for the root of the empty tree; no operation ever
//     surfaces it or treats it as a stored key.
//   - All mutation funnels through Insert and Delete. Each performs the
//     plain BST edit and then restores the red-black invariants with an
//     iterative fixup: three insert cases and four delete cases, each
//     mirrored left/right.
//   - Queries never mutate: Search, InOrder, Min, Max, Len, Height,
//     BlackHeight, and the full audit IsValid.
//
// Invariants (hold after every Insert and Delete)
//
//  1. Every node is red or black; the sentinel is black.
//  2. The root is black.
//  3. A red node never has a red child.
//  4. Every path from a node down to a descendant sentinel crosses the
//     same number of black nodes.
//  5. An in-order walk yields keys in strictly ascending comparator order.
//  6. Keys are unique: inserting an equal key is a no-op.
//
// Invariants 3 and 4 together bound the height by 2*log2(n+1), which is
// what keeps every descent logarithmic regardless of insertion order.
//
// Complexity (n = stored keys)
//
//   - Insert, Delete, Search, Min, Max: O(log n)
//   - InOrder, Height, IsValid:         O(n)
//   - BlackHeight:                      O(log n)
//   - Len, Clear:                       O(1)
//
// Usage
//
//	t := rbtree.NewOrdered[int]()
//	for _, k := range []int{10, 5, 15, 3, 7} {
//		t.Insert(k)
//	}
//	t.Delete(5)
//	fmt.Println(t.Search(10)) // true
//
//	t.InOrder(func(k int) bool {
//		fmt.Println(k) // ascending
//		return true    // false stops the walk early
//	})
//
//	// Custom ordering:
//	desc := rbtree.New[int](func(a, b int) int { return b - a })
//	desc.Insert(7) // iterates largest first
//
// Concurrency
//
//	A Tree is not safe for concurrent use. Callers sharing one across
//	goroutines must serialize every access externally; the package takes
//	no locks and starts no goroutines.
//
// Errors
//
//	All operations are total: deleting or searching an absent key is a
//	normal outcome, not an error, and inserting a duplicate is a no-op.
//	The single misuse class is a comparator that fails to describe a
//	strict total order; results are then undefined and the tree does not
//	attempt detection. New panics on a nil comparator, since no ordering
//	strategy exists at all.
package rbtree
