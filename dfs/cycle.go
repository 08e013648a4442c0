package dfs

import (
	"errors"
	"fmt"

	"github.com/hermanconnor/dsa-go/graph"
)

// HasCycle reports whether g contains a cycle. For directed graphs a
// cycle is an edge back onto the current DFS path; for undirected
// graphs it is any edge to an already-reached vertex other than the
// immediate parent. Self-loops count as cycles in both modes.
func HasCycle(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		// a directed graph is cyclic exactly when it cannot be
		// topologically ordered
		_, err := TopologicalSort(g)
		switch {
		case errors.Is(err, ErrCycleDetected):
			return true, nil
		case err != nil:
			return false, err
		}
		return false, nil
	}
	return undirectedHasCycle(g)
}

// uFrame is one partially-expanded vertex on the undirected walk stack.
type uFrame struct {
	id     string
	parent string
	nbrs   []string
	next   int
}

// undirectedHasCycle walks every component, skipping the arrival edge
// at each vertex. A second meeting with any vertex closes a cycle.
func undirectedHasCycle(g *graph.Graph) (bool, error) {
	visited := make(map[string]bool, g.VertexCount())

	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		nbrs, err := g.NeighborIDs(root)
		if err != nil {
			return false, fmt.Errorf("dfs: neighbors of %q: %w", root, err)
		}
		visited[root] = true
		stack := []uFrame{{id: root, nbrs: nbrs}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next >= len(f.nbrs) {
				stack = stack[:len(stack)-1]
				continue
			}

			nb := f.nbrs[f.next]
			f.next++ // advance before any push; append may move the frame
			if nb == f.parent {
				continue // the edge the walk arrived by
			}
			if visited[nb] {
				return true, nil
			}
			visited[nb] = true
			nbrs, err := g.NeighborIDs(nb)
			if err != nil {
				return false, fmt.Errorf("dfs: neighbors of %q: %w", nb, err)
			}
			stack = append(stack, uFrame{id: nb, parent: f.id, nbrs: nbrs})
		}
	}
	return false, nil
}
