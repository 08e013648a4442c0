package hashtable

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned by New when an Option received an
// invalid value.
var ErrOptionViolation = errors.New("hashtable: invalid option value")

const (
	defaultCapacity = 16
	defaultMaxLoad  = 0.75
)

// Options holds the tunables accepted by New.
type Options struct {
	// Capacity hints the initial bucket count; it is rounded up to a
	// power of two.
	Capacity int
	// MaxLoadFactor is the entries-per-bucket ratio that triggers a
	// resize. Values above 1 trade speed for memory.
	MaxLoadFactor float64
	// Seed feeds the hash function.
	Seed uint32

	err error // first option violation, surfaced by New
}

// Option mutates Options before the table is built.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: 16 buckets, load
// factor 0.75, zero seed.
func DefaultOptions() Options {
	return Options{
		Capacity:      defaultCapacity,
		MaxLoadFactor: defaultMaxLoad,
	}
}

// WithCapacity hints the initial bucket count.
//
//	n > 0:  rounded up to the next power of two
//	n == 0: keep the default
//	n < 0:  invalid -> ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: capacity %d is negative", ErrOptionViolation, n)
			return
		}
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithMaxLoadFactor sets the resize threshold. Values must be positive;
// NaN is rejected.
func WithMaxLoadFactor(f float64) Option {
	return func(o *Options) {
		if !(f > 0) {
			o.err = fmt.Errorf("%w: max load factor %v is not positive", ErrOptionViolation, f)
			return
		}
		o.MaxLoadFactor = f
	}
}

// WithSeed feeds the hash function. Any value is valid.
func WithSeed(seed uint32) Option {
	return func(o *Options) { o.Seed = seed }
}
