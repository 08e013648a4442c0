package queue

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned by New when an option carried an
// invalid value.
var ErrOptionViolation = errors.New("queue: invalid option supplied")

// defaultCapacity is the ring size used when no capacity option is given.
const defaultCapacity = 8

// Option configures a Queue via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables accepted by New.
type Options struct {
	// Capacity is the initial ring size.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the Options New starts from: a small ring and a
// clear error state.
func DefaultOptions() Options {
	return Options{Capacity: defaultCapacity}
}

// WithCapacity pre-sizes the ring buffer.
//
//	n > 0: initial capacity n
//	n == 0: keep the default
//	n < 0: invalid -> ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// keep default
		default:
			o.Capacity = n
		}
	}
}
