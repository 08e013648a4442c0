package bloom

import (
	"errors"
	"math"

	"github.com/spaolacci/murmur3"
)

var (
	// ErrInvalidItems indicates the expected key count is not positive.
	ErrInvalidItems = errors.New("bloom: expected item count must be positive")
	// ErrInvalidRate indicates the false positive rate is outside (0, 1).
	ErrInvalidRate = errors.New("bloom: false positive rate must be in (0, 1)")
)

// Filter is a bloom filter sized for a target false positive rate.
type Filter struct {
	bits  []uint64
	m     uint64 // total bit positions
	k     int    // probes per key
	count int    // Add calls so far
}

// New sizes a Filter for expectedItems keys at falsePositiveRate.
// The rate holds approximately while at most expectedItems distinct
// keys are added; beyond that it degrades smoothly.
func New(expectedItems int, falsePositiveRate float64) (*Filter, error) {
	if expectedItems <= 0 {
		return nil, ErrInvalidItems
	}
	if !(falsePositiveRate > 0 && falsePositiveRate < 1) {
		return nil, ErrInvalidRate
	}

	n := float64(expectedItems)
	m := uint64(math.Ceil(-n * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2)))
	k := int(math.Round(float64(m) / n * math.Ln2))
	if k < 1 {
		k = 1
	}

	return &Filter{
		bits: make([]uint64, (m+63)/64),
		m:    m,
		k:    k,
	}, nil
}

// Add records key in the filter.
func (f *Filter) Add(key string) {
	h1, h2 := murmur3.Sum128([]byte(key))
	for i := 0; i < f.k; i++ {
		pos := f.probe(h1, h2, uint64(i))
		f.bits[pos>>6] |= 1 << (pos & 63)
	}
	f.count++
}

// MightContain reports whether key may have been added. False is
// definitive; true is wrong at roughly the configured rate.
func (f *Filter) MightContain(key string) bool {
	h1, h2 := murmur3.Sum128([]byte(key))
	for i := 0; i < f.k; i++ {
		pos := f.probe(h1, h2, uint64(i))
		if f.bits[pos>>6]&(1<<(pos&63)) == 0 {
			return false
		}
	}
	return true
}

// probe derives the i-th bit position from the two murmur3 halves by
// double hashing.
func (f *Filter) probe(h1, h2, i uint64) uint64 {
	return (h1 + i*h2) % f.m
}

// K returns the number of hash probes per key.
func (f *Filter) K() int { return f.k }

// M returns the size of the bit set in bits.
func (f *Filter) M() int { return int(f.m) }

// Len returns the number of Add calls so far; repeated keys count
// every time, since the filter cannot tell them apart.
func (f *Filter) Len() int { return f.count }
