package dijkstra

import (
	"fmt"

	"github.com/hermanconnor/dsa-go/binaryheap"
	"github.com/hermanconnor/dsa-go/graph"
)

// pqItem pairs a vertex with a tentative distance; the heap pops the
// smallest distance first.
type pqItem struct {
	id   string
	dist int64
}

// byDist orders pq items by ascending tentative distance.
func byDist(a, b pqItem) int {
	switch {
	case a.dist < b.dist:
		return -1
	case a.dist > b.dist:
		return +1
	default:
		return 0
	}
}

// Dijkstra computes shortest paths in g from sourceID, configured by
// opts. Instead of a decrease-key operation the heap holds one entry
// per relaxation; stale entries are recognized and skipped when popped.
func Dijkstra(g *graph.Graph, sourceID string, opts ...Option) (*Result, error) {
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
	if !g.HasVertex(sourceID) {
		return nil, ErrSourceNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s->%s weight %d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	pq, err := binaryheap.New(byDist, binaryheap.WithCapacity(n))
	if err != nil {
		return nil, fmt.Errorf("dijkstra: priority queue: %w", err)
	}
	res := &Result{
		Dist:   make(map[string]int64, n),
		Parent: make(map[string]string, n),
	}
	tentative := make(map[string]int64, n)

	tentative[sourceID] = 0
	pq.Push(pqItem{id: sourceID, dist: 0})

	for {
		cur, ok := pq.Pop()
		if !ok {
			break
		}
		if _, done := res.Dist[cur.id]; done {
			continue // stale entry superseded by a shorter relaxation
		}
		if cur.dist > o.MaxDistance {
			break // pops come in ascending order: nothing nearer remains
		}
		res.Dist[cur.id] = cur.dist

		nbrs, err := g.Neighbors(cur.id)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: neighbors of %q: %w", cur.id, err)
		}
		for _, e := range nbrs {
			alt := cur.dist + e.Weight
			if alt > o.MaxDistance {
				continue
			}
			if best, seen := tentative[e.To]; seen && alt >= best {
				continue
			}
			tentative[e.To] = alt
			res.Parent[e.To] = cur.id
			pq.Push(pqItem{id: e.To, dist: alt})
		}
	}
	return res, nil
}
