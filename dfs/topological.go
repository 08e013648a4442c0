package dfs

import (
	"context"
	"fmt"

	"github.com/hermanconnor/dsa-go/graph"
)

// Vertex colors for the directed walk.
const (
	white = iota // not reached yet
	gray         // on the current DFS path
	black        // fully processed
)

// topoOptions holds the configuration of one TopologicalSort run.
type topoOptions struct {
	ctx context.Context
	err error
}

// TopoOption mutates topoOptions before the sort starts.
type TopoOption func(*topoOptions)

// WithCancelContext installs ctx so a long sort can be cancelled.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.ctx = ctx
	}
}

// TopologicalSort returns the vertices of a directed acyclic graph in
// an order where every edge points from an earlier vertex to a later
// one. Roots are taken in ascending ID order, so the result over the
// same graph is deterministic. Cycles surface as ErrCycleDetected.
func TopologicalSort(g *graph.Graph, opts ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	n := g.VertexCount()
	color := make(map[string]int, n)
	post := make([]string, 0, n)

	for _, root := range g.Vertices() {
		if color[root] != white {
			continue
		}
		var err error
		if post, err = finishOrder(g, root, color, post, o.ctx); err != nil {
			return nil, err
		}
	}

	// reverse post-order: last finished comes first
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post, nil
}

// topoFrame is one partially-expanded vertex on the explicit stack.
type topoFrame struct {
	id   string
	nbrs []string
	next int
}

// finishOrder runs one iterative DFS from root, appending vertices to
// post in finishing order. A gray neighbor means the walk has looped
// back onto its own path, which is a directed cycle.
func finishOrder(g *graph.Graph, root string, color map[string]int, post []string, ctx context.Context) ([]string, error) {
	nbrs, err := g.NeighborIDs(root)
	if err != nil {
		return nil, fmt.Errorf("dfs: neighbors of %q: %w", root, err)
	}
	color[root] = gray
	stack := []topoFrame{{id: root, nbrs: nbrs}}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]
		if f.next >= len(f.nbrs) {
			color[f.id] = black
			post = append(post, f.id)
			stack = stack[:len(stack)-1]
			continue
		}

		nb := f.nbrs[f.next]
		f.next++ // advance before any push; append may move the frame
		switch color[nb] {
		case gray:
			return nil, fmt.Errorf("%w: back edge %s->%s", ErrCycleDetected, f.id, nb)
		case white:
			nbrs, err := g.NeighborIDs(nb)
			if err != nil {
				return nil, fmt.Errorf("dfs: neighbors of %q: %w", nb, err)
			}
			color[nb] = gray
			stack = append(stack, topoFrame{id: nb, nbrs: nbrs})
		}
	}
	return post, nil
}
