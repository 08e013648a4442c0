// Package bloom implements a bloom filter: a fixed-size bit set that
// answers membership with no false negatives and a bounded false
// positive rate.
//
// What:
//   - New sizes the filter from the expected number of keys and the
//     acceptable false positive rate, using the standard formulas
//     m = ceil(-n*ln(p) / ln(2)^2) bits and k = round(m/n * ln(2))
//     probes per key.
//   - Add sets k bit positions per key; MightContain reports whether
//     all k are set. A false answer is definitive; a true answer may be
//     wrong at roughly the configured rate.
//   - The k positions derive from one 128-bit murmur3 hash by double
//     hashing (h1 + i*h2), so each Add and MightContain hashes once
//     regardless of k.
//
// Why:
//   - Checking a filter is orders of magnitude cheaper than probing the
//     backing store; callers skip the expensive lookup whenever the
//     filter says "definitely absent".
//
// Complexity:
//   - Add and MightContain: O(k) bit operations after one hash.
//   - Memory: m bits, about 9.6 bits per key at a 1% error rate.
//
// Usage:
//
//	f, err := bloom.New(10_000, 0.01)
//	if err != nil { ... }            // ErrInvalidItems, ErrInvalidRate
//	f.Add("user:42")
//	if f.MightContain("user:42") {   // always true after Add
//	    // ...probe the real store
//	}
//
// Keys cannot be removed; deletion requires a counting variant this
// package does not provide.
package bloom
