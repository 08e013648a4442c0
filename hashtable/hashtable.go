package hashtable

import (
	"github.com/spaolacci/murmur3"
)

// entry is one stored key/value pair inside a bucket chain.
type entry[V any] struct {
	key string
	val V
}

// Table is a separate-chaining hash table with string keys.
type Table[V any] struct {
	buckets [][]entry[V]
	size    int
	maxLoad float64
	seed    uint32
}

// New builds an empty Table configured by opts.
func New[V any](opts ...Option) (*Table[V], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Table[V]{
		buckets: make([][]entry[V], nextPow2(o.Capacity)),
		maxLoad: o.MaxLoadFactor,
		seed:    o.Seed,
	}, nil
}

// nextPow2 returns the smallest power of two >= n, at least 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// bucketFor maps key to a bucket index within n buckets (n a power of
// two, so masking replaces modulo).
func (t *Table[V]) bucketFor(key string, n int) int {
	return int(murmur3.Sum64WithSeed([]byte(key), t.seed) & uint64(n-1))
}

// Set stores val under key, replacing any previous value.
func (t *Table[V]) Set(key string, val V) {
	if float64(t.size+1) > t.maxLoad*float64(len(t.buckets)) {
		t.grow()
	}
	i := t.bucketFor(key, len(t.buckets))
	for j := range t.buckets[i] {
		if t.buckets[i][j].key == key {
			t.buckets[i][j].val = val
			return
		}
	}
	t.buckets[i] = append(t.buckets[i], entry[V]{key: key, val: val})
	t.size++
}

// Get returns the value stored under key and whether it exists.
func (t *Table[V]) Get(key string) (V, bool) {
	i := t.bucketFor(key, len(t.buckets))
	for j := range t.buckets[i] {
		if t.buckets[i][j].key == key {
			return t.buckets[i][j].val, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes key and reports whether it was present.
func (t *Table[V]) Delete(key string) bool {
	i := t.bucketFor(key, len(t.buckets))
	chain := t.buckets[i]
	for j := range chain {
		if chain[j].key == key {
			t.buckets[i] = append(chain[:j], chain[j+1:]...)
			t.size--
			return true
		}
	}
	return false
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int { return t.size }

// Keys returns every stored key in no particular order.
func (t *Table[V]) Keys() []string {
	out := make([]string, 0, t.size)
	for _, chain := range t.buckets {
		for _, e := range chain {
			out = append(out, e.key)
		}
	}
	return out
}

// LoadFactor returns the current entries-per-bucket ratio.
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// grow doubles the bucket array and rehashes every entry.
func (t *Table[V]) grow() {
	next := make([][]entry[V], len(t.buckets)*2)
	for _, chain := range t.buckets {
		for _, e := range chain {
			i := t.bucketFor(e.key, len(next))
			next[i] = append(next[i], e)
		}
	}
	t.buckets = next
}
