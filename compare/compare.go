// Package compare defines the three-way comparator shape shared by the
// generic containers and algorithms in this repository, plus ready-made
// orderings for the common cases.
package compare

import "golang.org/x/exp/constraints"

// Func is a three-way comparison: negative when a sorts before b,
// positive when a sorts after b, zero when the two are equal.
// A Func must describe a strict total order over its type.
type Func[T any] func(a, b T) int

// Ordered compares any ordered built-in type (integers, floats, strings)
// by the natural < order.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse inverts the order described by f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int { return -f(a, b) }
}
