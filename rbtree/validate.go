package rbtree

// IsValid audits the full red-black contract: the sentinel and the root
// are black, no red node has a red child, every path from a node down
// to a sentinel crosses the same number of black nodes, and the keys
// obey BST ordering under the comparator. Intended for tests and
// debugging; no mutating operation depends on it.
//
// Complexity: O(n).
func (t *Tree[T]) IsValid() bool {
	if t.sentinel.color != black {
		return false
	}
	if t.root.color != black {
		return false
	}
	_, _, _, ok := t.audit(t.root)
	return ok
}

// audit recursively computes, bottom-up, the black-height of x's subtree
// together with its extreme nodes, failing on the first red-red pair,
// black-height mismatch, or ordering violation. min and max are nil for
// an empty subtree; the range check compares the left subtree's maximum
// and the right subtree's minimum against x, which covers every deep
// violation a parent-child comparison would miss.
func (t *Tree[T]) audit(x *node[T]) (bh int, min, max *node[T], ok bool) {
	if x == t.sentinel {
		return 1, nil, nil, true // the sentinel is one black unit
	}

	if x.color == red && (x.left.color == red || x.right.color == red) {
		return 0, nil, nil, false
	}

	lbh, lmin, lmax, ok := t.audit(x.left)
	if !ok {
		return 0, nil, nil, false
	}
	rbh, rmin, rmax, ok := t.audit(x.right)
	if !ok {
		return 0, nil, nil, false
	}

	if lbh != rbh {
		return 0, nil, nil, false
	}
	if lmax != nil && t.cmp(lmax.key, x.key) >= 0 {
		return 0, nil, nil, false
	}
	if rmin != nil && t.cmp(x.key, rmin.key) >= 0 {
		return 0, nil, nil, false
	}

	bh = lbh
	if x.color == black {
		bh++
	}
	min, max = lmin, rmax
	if min == nil {
		min = x
	}
	if max == nil {
		max = x
	}

	return bh, min, max, true
}
