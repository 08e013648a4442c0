package graph

import "sort"

// AddVertex registers id and reports whether it was newly added.
// Re-adding an existing vertex is a no-op. The empty ID is rejected.
func (g *Graph) AddVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[id]; ok {
		return false
	}
	g.adj[id] = make(map[string]int64)
	return true
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]
	return ok
}

// AddEdge stores an edge from->to with weight w, creating missing
// endpoints on the fly. Undirected graphs mirror the adjacency both
// ways. Re-adding an existing edge overwrites its weight; the graph is
// not a multigraph.
func (g *Graph) AddEdge(from, to string, w int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(from)
	g.ensure(to)
	if _, ok := g.adj[from][to]; !ok {
		g.edgeCount++
	}
	g.adj[from][to] = w
	if !g.directed && from != to {
		g.adj[to][from] = w
	}
	return nil
}

// ensure creates the adjacency bucket for id if absent.
// Callers must hold the write lock.
func (g *Graph) ensure(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}

// HasEdge reports whether an edge from->to is stored. For undirected
// graphs the mirrored direction answers true as well.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]
	return ok
}

// Weight returns the stored weight of the edge from->to.
// The second result is false when the edge does not exist.
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[from][to]
	return w, ok
}

// Neighbors returns the edges leaving id, sorted by destination ID.
// Every returned Edge has From == id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, 0, len(bucket))
	for to, w := range bucket {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })
	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in ascending order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(bucket))
	for to := range bucket {
		out = append(out, to)
	}
	sort.Strings(out)
	return out, nil
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Edges returns every logical edge exactly once, sorted by (From, To).
// For undirected graphs the endpoint with the smaller ID is reported
// as From.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for from, bucket := range g.adj {
		for to, w := range bucket {
			if !g.directed && from > to {
				continue // mirrored entry; the partner bucket reports it
			}
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// EdgeCount returns the number of logical edges; an undirected edge
// counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edgeCount
}
