package rbtree

// Insert stores key in the tree. Inserting a key that compares equal to
// a stored key is a no-op: keys are unique.
//
// Complexity: O(log n).
func (t *Tree[T]) Insert(key T) {
	// 1) plain BST descent, remembering the attach point
	parent := t.sentinel
	x := t.root
	for x != t.sentinel {
		parent = x
		switch c := t.cmp(key, x.key); {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return // duplicate key
		}
	}

	// 2) attach a red leaf under the last node visited
	z := &node[T]{
		key:    key,
		color:  red,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: parent,
	}
	switch {
	case parent == t.sentinel:
		t.root = z // tree was empty
	case t.cmp(key, parent.key) < 0:
		parent.left = z
	default:
		parent.right = z
	}
	t.size++

	// 3) restore the red-black invariants upward from z
	t.insertFixup(z)
}

// insertFixup rebalances after attaching the red node z. While z's
// parent is red the no-red-red invariant is broken; each round applies
// one of three cases, mirrored left/right:
//
//	case A: uncle red             -> recolor parent/uncle/grandparent, ascend two levels
//	case B: uncle black, z inner  -> rotate z's parent, reducing to case C
//	case C: uncle black, z outer  -> recolor and rotate the grandparent, done
//
// The loop cannot run past the root: the root's parent is the black
// sentinel. The root is forced black afterwards, since case A may have
// pushed red all the way up.
func (t *Tree[T]) insertFixup(z *node[T]) {
	for z.parent.color == red {
		// z.parent is red, so it is not the root and a grandparent exists
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == red {
				// case A: flush red one level up
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					// case B: make z an outer grandchild
					z = z.parent
					t.rotateLeft(z)
				}
				// case C: terminal recolor + rotation
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}
