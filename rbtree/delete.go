package rbtree

// Delete removes key from the tree. Deleting a key that is not stored
// is a no-op.
//
// Complexity: O(log n).
func (t *Tree[T]) Delete(key T) {
	z := t.lookup(key)
	if z == t.sentinel {
		return // absent key
	}

	// A node with two children is never unlinked directly: it takes over
	// its in-order successor's key and the successor, which has no left
	// child, is spliced out instead.
	if z.left != t.sentinel && z.right != t.sentinel {
		y := t.min(z.right)
		z.key = y.key
		z = y
	}

	// z has at most one non-sentinel child x; splice z out. transplant
	// sets x.parent even when x is the sentinel, which deleteFixup walks
	// upward through (scratch with no meaning after the fixup returns).
	x := z.right
	if z.right == t.sentinel {
		x = z.left
	}
	t.transplant(z, x)
	t.size--

	// Removing a red node leaves every black count intact. Removing a
	// black one leaves the paths through x one black unit short.
	if z.color == black {
		t.deleteFixup(x)
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted
// at v in u's parent link. v's parent pointer is set unconditionally.
func (t *Tree[T]) transplant(u, v *node[T]) {
	switch {
	case u.parent == t.sentinel:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteFixup restores the invariants after a black node was spliced
// out. x carries the missing black unit; each round applies one of four
// cases, mirrored left/right:
//
//	case 1: sibling red                        -> rotate the parent, uncovering a black sibling
//	case 2: sibling black, both children black -> recolor sibling, push the deficit up
//	case 3: sibling black, near child red      -> rotate the sibling, reducing to case 4
//	case 4: sibling black, far child red       -> recolor and rotate the parent, done
//
// The final recolor absorbs the extra black when case 2 stopped on a
// red node, and is a no-op when x reached the root.
func (t *Tree[T]) deleteFixup(x *node[T]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			sib := x.parent.right
			if sib.color == red {
				// case 1
				sib.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				sib = x.parent.right
			}
			if sib.left.color == black && sib.right.color == black {
				// case 2
				sib.color = red
				x = x.parent
			} else {
				if sib.right.color == black {
					// case 3: far child black, so the near one is red
					sib.left.color = black
					sib.color = red
					t.rotateRight(sib)
					sib = x.parent.right
				}
				// case 4
				sib.color = x.parent.color
				x.parent.color = black
				sib.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			sib := x.parent.left
			if sib.color == red {
				// case 1
				sib.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				sib = x.parent.left
			}
			if sib.left.color == black && sib.right.color == black {
				// case 2
				sib.color = red
				x = x.parent
			} else {
				if sib.left.color == black {
					// case 3
					sib.right.color = black
					sib.color = red
					t.rotateLeft(sib)
					sib = x.parent.left
				}
				// case 4
				sib.color = x.parent.color
				x.parent.color = black
				sib.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
