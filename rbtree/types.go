// Package rbtree core types: node colors, the node itself, the Tree
// handle, and its constructors.
package rbtree

import (
	"golang.org/x/exp/constraints"

	"github.com/hermanconnor/dsa-go/compare"
)

// Comparator is a three-way comparison over keys: negative when a sorts
// before b, positive when a sorts after b, zero when the keys are equal.
// It must describe a strict total order; the tree does not validate this.
type Comparator[T any] func(a, b T) int

// color of a node. The zero value is red: freshly inserted nodes enter
// the tree red and are recolored by the fixup passes.
type color uint8

const (
	red color = iota
	black
)

// node is a single tree vertex. left and right are the owning links;
// parent is a non-owning back-reference used only to walk upward during
// the fixup passes.
type node[T any] struct {
	key    T
	color  color
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

// Tree is a red-black tree over keys of type T. The zero value is not
// usable; construct with New or NewOrdered.
type Tree[T any] struct {
	root     *node[T]
	sentinel *node[T] // shared black leaf standing in for every nil child
	cmp      Comparator[T]
	size     int
}

// New returns an empty Tree ordered by cmp.
//
// New panics when cmp is nil: without a comparator no key ordering
// exists, which is a programming error rather than a runtime condition.
func New[T any](cmp Comparator[T]) *Tree[T] {
	if cmp == nil {
		panic("rbtree: nil comparator")
	}
	// The sentinel doubles as the empty tree's root and as the parent
	// terminator above the real root. It stays black for the tree's
	// whole lifetime.
	s := &node[T]{color: black}
	return &Tree[T]{root: s, sentinel: s, cmp: cmp}
}

// NewOrdered returns an empty Tree over any ordered built-in type
// (integers, floats, strings), keyed by the natural < order.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New[T](compare.Ordered[T])
}
