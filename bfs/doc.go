// Package bfs implements breadth-first search over a graph.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What:
//   - Explores vertices in non-decreasing distance (edge count) from a
//     start vertex and records, per reached vertex, its depth and its
//     predecessor in the BFS tree.
//   - Result.PathTo reconstructs a fewest-hops path to any reached
//     vertex from the parent links.
//   - Options add cancellation (WithContext), a per-visit callback that
//     may abort the walk (WithOnVisit), a depth cap (WithMaxDepth), and
//     edge pruning (WithFilterNeighbor).
//
// Why:
//   - For unweighted graphs the BFS tree is the shortest-path tree, so
//     one O(V+E) pass answers both distance and path queries.
//
// Determinism:
//   - Neighbors are expanded in ascending ID order, so the visit
//     sequence over the same graph is fully reproducible.
//
// Complexity:
//   - Time O(V + E), memory O(V) for the frontier, the visited set and
//     the result maps.
//
// Usage:
//
//	res, err := bfs.BFS(g, "A")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph,
//	    // ErrOptionViolation, a context error, or a wrapped hook error
//	}
//	path, err := res.PathTo("F")
//
// BFS rejects weighted graphs: layer order measures hops, and silently
// ignoring weights would mislabel the result as shortest paths. Use
// dijkstra or bellmanford for weighted distances.
package bfs
