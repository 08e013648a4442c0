// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm over a weighted directed graph.Graph.
//
// What:
//   - Computes minimal total weights from a source vertex by repeated
//     relaxation of every edge, tolerating negative weights.
//   - Detects negative-weight cycles reachable from the source and
//     reports them as ErrNegativeCycle instead of returning distances
//     that no walk can actually achieve.
//   - Stops early once a full round relaxes nothing.
//
// Why:
//   - Dijkstra's greedy settle order breaks on negative weights; the
//     V-1 relaxation rounds here cost more, O(V*E), but stay correct
//     for any weight sign as long as no negative cycle exists.
//
// Complexity:
//   - Time O(V * E) worst case, memory O(V) beyond the input.
//
// Usage:
//
//	g := graph.New(graph.WithDirected(), graph.WithWeighted())
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("B", "C", -2)
//
//	res, err := bellmanford.BellmanFord(g, "A")
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrNotWeighted,
//	    // ErrNotDirected, ErrNegativeCycle or a context error
//	}
//	fmt.Println(res.Dist["C"]) // 2
//
// The graph must be directed: mirroring an undirected negative edge
// creates a two-vertex negative cycle, so undirected graphs are
// rejected outright. Result.Dist holds reached vertices only; absence
// means unreachable.
package bellmanford
