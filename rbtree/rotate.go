// Rotations: the O(1) structural primitive both fixup passes are built
// on. A rotation changes the local shape of three subtrees while
// preserving the in-order key sequence.

package rbtree

// rotateLeft promotes x's right child y into x's position: x becomes
// y's left child and y's former left subtree moves into x's right slot.
// x.right must not be the sentinel.
//
// Complexity: O(1).
func (t *Tree[T]) rotateLeft(x *node[T]) {
	y := x.right

	// 1) y's left subtree becomes x's right subtree
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}

	// 2) lift y into x's slot under x's parent (or as the root)
	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	// 3) hang x under y
	y.left = x
	x.parent = y
}

// rotateRight is the mirror image of rotateLeft: it promotes x's left
// child into x's position. x.left must not be the sentinel.
//
// Complexity: O(1).
func (t *Tree[T]) rotateRight(x *node[T]) {
	y := x.left

	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == t.sentinel:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}

	y.right = x
	x.parent = y
}
