// Package dfs implements depth-first search over a graph.Graph, plus
// the two classics built on it: topological sorting and cycle
// detection.
//
// What:
//   - DFS explores as deep as possible before backtracking, recording
//     preorder visit sequence, parent links, and the visited set.
//   - TopologicalSort orders the vertices of a directed acyclic graph
//     so every edge points forward in the order.
//   - HasCycle reports whether the graph contains a cycle, with the
//     usual distinct definitions for directed and undirected graphs.
//   - All three are iterative with explicit stacks, so deep or
//     degenerate graphs cannot overflow the goroutine stack.
//
// Why:
//   - DFS order exposes structure BFS flattens: tree/back edges,
//     finishing times, reachability along single branches. The sort and
//     the cycle check are the two consumers of that structure every
//     algorithms toolbox needs.
//
// Determinism:
//   - Neighbors are explored in ascending ID order, so results over the
//     same graph are fully reproducible.
//
// Complexity:
//   - Time O(V + E), memory O(V), for all three entry points.
//
// Usage:
//
//	res, err := dfs.DFS(g, "A")
//	order, err := dfs.TopologicalSort(g)   // ErrCycleDetected on cycles
//	cyclic, err := dfs.HasCycle(g)
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation for DFS.
//   - ErrNotDirected, ErrCycleDetected for TopologicalSort.
package dfs
