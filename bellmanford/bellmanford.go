package bellmanford

import (
	"github.com/hermanconnor/dsa-go/graph"
)

// BellmanFord computes shortest paths in g from sourceID, configured
// by opts. It runs at most V-1 relaxation rounds over every edge, then
// one detection round: any improvement still possible at that point
// can only come from a negative-weight cycle reachable from the source.
func BellmanFord(g *graph.Graph, sourceID string, opts ...Option) (*Result, error) {
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
	if !g.Weighted() {
		return nil, ErrNotWeighted
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	if !g.HasVertex(sourceID) {
		return nil, ErrSourceNotFound
	}

	edges := g.Edges()
	n := g.VertexCount()
	res := &Result{
		Dist:   make(map[string]int64, n),
		Parent: make(map[string]string, n),
	}
	res.Dist[sourceID] = 0

	for round := 1; round < n; round++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if !relaxAll(edges, res) {
			return res, nil // fixed point: no round can improve anything
		}
	}
	if relaxAll(edges, res) {
		return nil, ErrNegativeCycle
	}
	return res, nil
}

// relaxAll runs one relaxation round over every edge and reports
// whether any distance improved. Vertices without a Dist entry are
// still unreached and never relax outward.
func relaxAll(edges []graph.Edge, res *Result) bool {
	improved := false
	for _, e := range edges {
		from, ok := res.Dist[e.From]
		if !ok {
			continue
		}
		alt := from + e.Weight
		if best, seen := res.Dist[e.To]; !seen || alt < best {
			res.Dist[e.To] = alt
			res.Parent[e.To] = e.From
			improved = true
		}
	}
	return improved
}
