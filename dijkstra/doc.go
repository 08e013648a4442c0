// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over a weighted graph.Graph.
//
// What:
//   - Computes the minimal total weight from a source vertex to every
//     reachable vertex, plus parent links for path reconstruction.
//   - Uses a binary min-heap keyed by tentative distance with lazy
//     deletion: superseded heap entries are skipped on pop instead of
//     being removed in place.
//   - WithMaxDistance prunes the search to a radius, useful on large
//     graphs when only nearby vertices matter.
//
// Why:
//   - The greedy settle order is only sound when edges cannot shorten a
//     path after the fact, so the graph must be weighted and every
//     weight non-negative; both are checked up front.
//
// Complexity:
//   - Time O((V + E) log V), memory O(V) beyond the input.
//
// Usage:
//
//	g := graph.New(graph.WithWeighted())
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("B", "C", 1)
//	_ = g.AddEdge("A", "C", 9)
//
//	res, err := dijkstra.Dijkstra(g, "A")
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrNotWeighted,
//	    // ErrNegativeWeight or ErrOptionViolation
//	}
//	fmt.Println(res.Dist["C"])        // 5
//	path, _ := res.PathTo("C")        // [A B C]
//
// Result.Dist holds settled vertices only: absence means unreachable
// (or beyond MaxDistance). Negative weights are rejected before the
// search starts; use bellmanford when they are legitimate.
package dijkstra
