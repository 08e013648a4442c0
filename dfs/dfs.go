package dfs

import (
	"fmt"

	"github.com/hermanconnor/dsa-go/graph"
)

// frame is one pending visit on the explicit DFS stack.
type frame struct {
	id     string
	parent string
	depth  int
}

// DFS runs an iterative depth-first walk on g from startID, configured
// by opts. Neighbors are explored in ascending ID order; the first
// visit to a vertex fixes its parent link.
func DFS(g *graph.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:   make([]string, 0, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	stack := make([]frame, 0, n)
	stack = append(stack, frame{id: startID})

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if res.Visited[f.id] {
			continue // reached earlier through a deeper branch
		}
		res.Visited[f.id] = true
		res.Order = append(res.Order, f.id)
		if f.parent != "" {
			res.Parent[f.id] = f.parent
		}
		if err := o.OnVisit(f.id); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit at %q: %w", f.id, err)
		}
		if o.MaxDepth > 0 && f.depth >= o.MaxDepth {
			continue // depth cap: visit but do not expand
		}

		nbrs, err := g.NeighborIDs(f.id)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", f.id, err)
		}
		// push in reverse so the smallest ID is popped first
		for i := len(nbrs) - 1; i >= 0; i-- {
			if nb := nbrs[i]; !res.Visited[nb] {
				stack = append(stack, frame{id: nb, parent: f.id, depth: f.depth + 1})
			}
		}
	}
	return res, nil
}
