package graph

import (
	"errors"
	"sync"
)

var (
	// ErrEmptyVertexID indicates an operation received "" as a vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID must be non-empty")
	// ErrVertexNotFound indicates a lookup referenced an absent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Edge is one stored connection. In an undirected graph each logical
// edge appears once per endpoint in Neighbors but exactly once in Edges.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes every edge one-way, from its From vertex to its To
// vertex. By default edges are undirected and mirrored both ways.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted marks edge weights as meaningful. Weighted-only
// algorithms (dijkstra, bellmanford) reject graphs without this flag,
// and BFS rejects graphs with it. Weights are stored verbatim either way.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an in-memory adjacency-list graph with string vertex IDs.
// The directed and weighted flags are fixed at construction; all other
// state is guarded by mu.
type Graph struct {
	mu        sync.RWMutex
	directed  bool
	weighted  bool
	adj       map[string]map[string]int64 // from -> to -> weight
	edgeCount int                         // logical edges; a mirrored pair counts once
}

// New returns an empty Graph configured by opts.
func New(opts ...Option) *Graph {
	g := &Graph{adj: make(map[string]map[string]int64)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edge weights are meaningful.
func (g *Graph) Weighted() bool { return g.weighted }
