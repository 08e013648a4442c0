package binaryheap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heap construction.
var (
	// ErrNilComparator is returned when New or FromSlice receives no
	// comparator: without one no heap order exists.
	ErrNilComparator = errors.New("binaryheap: nil comparator")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("binaryheap: invalid option supplied")
)

// Option configures a Heap via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables accepted by New.
type Options struct {
	// Capacity pre-sizes the backing array.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the Options New starts from.
func DefaultOptions() Options {
	return Options{}
}

// WithCapacity pre-sizes the backing array.
//
//	n >= 0: reserve space for n items
//	n < 0:  invalid -> ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}
