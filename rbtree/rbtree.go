// Read-only operations over the tree: lookup, traversal, extremes, and
// the height/black-height diagnostics. None of these mutate any node.

package rbtree

// Search reports whether key is stored in the tree.
//
// Complexity: O(log n).
func (t *Tree[T]) Search(key T) bool {
	return t.lookup(key) != t.sentinel
}

// Len returns the number of stored keys.
//
// Complexity: O(1).
func (t *Tree[T]) Len() int { return t.size }

// Min returns the smallest stored key; ok is false when the tree is empty.
//
// Complexity: O(log n).
func (t *Tree[T]) Min() (min T, ok bool) {
	if t.root == t.sentinel {
		return min, false
	}
	return t.min(t.root).key, true
}

// Max returns the largest stored key; ok is false when the tree is empty.
//
// Complexity: O(log n).
func (t *Tree[T]) Max() (max T, ok bool) {
	if t.root == t.sentinel {
		return max, false
	}
	x := t.root
	for x.right != t.sentinel {
		x = x.right
	}
	return x.key, true
}

// Clear resets the tree to the empty state, dropping every stored key.
// The sentinel is reused; it lives for the tree's whole lifetime.
//
// Complexity: O(1).
func (t *Tree[T]) Clear() {
	t.root = t.sentinel
	t.size = 0
}

// InOrder walks the stored keys in ascending comparator order, calling
// visit once per key. Returning false from visit stops the walk early.
// The traversal keeps no cursor state between calls: it is restartable
// and purely read-only.
//
// Complexity: O(n).
func (t *Tree[T]) InOrder(visit func(key T) bool) {
	t.walkInOrder(t.root, visit)
}

// walkInOrder visits x's subtree left-node-right, skipping the sentinel.
// Returns false once visit has asked to stop.
func (t *Tree[T]) walkInOrder(x *node[T], visit func(key T) bool) bool {
	if x == t.sentinel {
		return true
	}
	if !t.walkInOrder(x.left, visit) {
		return false
	}
	if !visit(x.key) {
		return false
	}
	return t.walkInOrder(x.right, visit)
}

// Height returns the length in edges of the longest path from the root
// down to a sentinel leaf, which equals the number of key-bearing nodes
// on that path. An empty tree has height 0; the red-black invariants
// bound the result by 2*log2(n+1).
//
// Complexity: O(n).
func (t *Tree[T]) Height() int {
	return t.height(t.root)
}

func (t *Tree[T]) height(x *node[T]) int {
	if x == t.sentinel {
		return 0
	}
	l, r := t.height(x.left), t.height(x.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// BlackHeight returns the number of black nodes on a path from the root
// down to a sentinel leaf, excluding the root itself and counting the
// sentinel as the final black unit. The equal-black-height invariant
// makes the choice of path irrelevant, so the left spine is walked.
// An empty tree reports 1: the sentinel is its single black unit.
//
// Complexity: O(log n).
func (t *Tree[T]) BlackHeight() int {
	h := 1 // every path ends at the black sentinel
	if t.root == t.sentinel {
		return h
	}
	for x := t.root.left; x != t.sentinel; x = x.left {
		if x.color == black {
			h++
		}
	}
	return h
}

// lookup descends from the root comparing key at each node and returns
// the node holding key, or the sentinel when key is absent.
func (t *Tree[T]) lookup(key T) *node[T] {
	x := t.root
	for x != t.sentinel {
		switch c := t.cmp(key, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return t.sentinel
}

// min returns the leftmost node of the subtree rooted at x.
// x must not be the sentinel.
func (t *Tree[T]) min(x *node[T]) *node[T] {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}
