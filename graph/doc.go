// Package graph implements the adjacency-list graph shared by the
// traversal and shortest-path packages (bfs, dfs, dijkstra, bellmanford).
//
// What:
//   - Vertices are non-empty string IDs; edges carry an int64 weight.
//   - Directed or undirected, unweighted or weighted, chosen at
//     construction via WithDirected and WithWeighted.
//   - At most one edge per (from, to) pair: re-adding overwrites the
//     stored weight. Self-loops are allowed.
//   - All read accessors return vertices and edges in ascending ID
//     order, so every traversal over the same graph is deterministic.
//
// Why:
//   - The algorithm packages need a small, predictable core: cheap
//     neighbor iteration, O(1) membership checks, stable ordering.
//     Anything heavier (multi-edges, attributes, mutation hooks) would
//     leak complexity into every consumer.
//
// Complexity:
//   - AddVertex, HasVertex, AddEdge, HasEdge: O(1) expected.
//   - Neighbors, NeighborIDs: O(d log d) for degree d (sorting).
//   - Vertices: O(V log V). Edges: O(E log E).
//
// Usage:
//
//	g := graph.New(graph.WithDirected(), graph.WithWeighted())
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("A", "C", 2)
//	for _, e := range g.Edges() {
//	    fmt.Printf("%s->%s (%d)\n", e.From, e.To, e.Weight)
//	}
//
// Errors:
//   - ErrEmptyVertexID: an operation received "" as a vertex ID.
//   - ErrVertexNotFound: a lookup referenced an absent vertex.
//
// The zero Graph is not usable; construct with New. All methods are
// safe for concurrent use.
package graph
