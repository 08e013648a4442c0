// Package dsa is a toolbox of classic data structures and algorithms,
// each living in its own focused subpackage.
//
// The tree packages:
//
//	rbtree/     — generic red-black tree: ordered map semantics with
//	              O(log n) insert, delete and search, plus an invariant
//	              validator
//	binaryheap/ — generic binary min-heap ordered by a comparator
//
// The container packages:
//
//	queue/      — generic FIFO queue over a growable ring buffer
//	hashtable/  — separate-chaining hash table, murmur3-hashed
//	bloom/      — bloom filter sized from item count and error rate
//
// The slice packages:
//
//	sorting/    — Bubble, Insertion, Selection, Merge, Quick, Heap
//	searching/  — binary (lower-bound) and linear search
//	compare/    — the comparator contract the generic packages share
//
// The graph packages:
//
//	graph/       — adjacency-list graph with deterministic iteration
//	bfs/         — breadth-first search, hop-count shortest paths
//	dfs/         — depth-first search, topological sort, cycle check
//	dijkstra/    — weighted shortest paths, non-negative edges
//	bellmanford/ — weighted shortest paths, negative edges and
//	               negative-cycle detection
//
// Every generic container and algorithm takes a compare.Func comparator
// rather than constraining its element type, so custom orderings cost
// one closure:
//
//	t := rbtree.NewOrdered[int]()
//	t.Insert(42)
//
//	people := []Person{...}
//	sorting.Merge(people, func(a, b Person) int { return a.Age - b.Age })
//
// Each subpackage documents its own complexity bounds, error contract
// and concurrency guarantees; most are not safe for concurrent use, the
// exceptions say so explicitly.
//
//	go get github.com/hermanconnor/dsa-go
package dsa
