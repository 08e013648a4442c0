// Package hashtable implements a separate-chaining hash table with
// string keys and generic values, hashed with murmur3.
//
// What:
//   - Set, Get, Delete and Len with O(1) expected cost.
//   - Collisions chain inside a bucket slice; when the load factor
//     (entries per bucket) exceeds the configured maximum, the bucket
//     array doubles and every entry rehashes.
//   - Bucket counts are powers of two so the hash maps to a bucket with
//     a mask instead of a modulo.
//   - WithSeed varies the hash function, which makes bucket spread
//     reproducible in tests and unpredictable in adversarial settings.
//
// Why:
//   - The built-in map is almost always the right choice; this table
//     exists for the cases it cannot serve: a pluggable hash seed, an
//     inspectable load factor, and deterministic resize behavior.
//
// Complexity:
//   - Set, Get, Delete: O(1) expected, O(n) degenerate (all keys in one
//     bucket). Resize is O(n) amortized over the inserts that cause it.
//
// Usage:
//
//	ht, err := hashtable.New[int]()
//	if err != nil { ... }            // ErrOptionViolation
//	ht.Set("answer", 42)
//	v, ok := ht.Get("answer")        // 42, true
//	ht.Delete("answer")
//
// Keys returns the stored keys in no particular order. The table is
// not safe for concurrent use.
package hashtable
