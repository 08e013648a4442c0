package bfs

import (
	"fmt"

	"github.com/hermanconnor/dsa-go/graph"
	"github.com/hermanconnor/dsa-go/queue"
)

// item pairs a frontier vertex with its BFS depth.
type item struct {
	id    string
	depth int
}

// walker carries the mutable state of one BFS run.
type walker struct {
	g        *graph.Graph
	opts     Options
	frontier *queue.Queue[item]
	visited  map[string]bool
	res      *Result
}

// BFS runs breadth-first search on g from startID, configured by opts.
// Vertices are marked visited when enqueued, so each is expanded at
// most once even in cyclic graphs.
func BFS(g *graph.Graph, startID string, opts ...Option) (*Result, error) {
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
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	frontier, err := queue.New[item](queue.WithCapacity(n))
	if err != nil {
		return nil, fmt.Errorf("bfs: frontier queue: %w", err)
	}
	w := &walker{
		g:        g,
		opts:     o,
		frontier: frontier,
		visited:  make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")
	if err := w.run(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue admits id to the frontier at the given depth and records its
// tree parent. The start vertex passes parent == "".
func (w *walker) enqueue(id string, depth int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.frontier.Enqueue(item{id: id, depth: depth})
}

// run drains the frontier layer by layer until it empties, the context
// is done, or a visit hook aborts.
func (w *walker) run() error {
	for {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur, ok := w.frontier.Dequeue()
		if !ok {
			return nil
		}

		w.res.Order = append(w.res.Order, cur.id)
		if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit at %q: %w", cur.id, err)
		}
		if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
			continue // depth cap: visit but do not expand
		}

		nbrs, err := w.g.NeighborIDs(cur.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", cur.id, err)
		}
		for _, nb := range nbrs {
			if w.visited[nb] || !w.opts.FilterNeighbor(cur.id, nb) {
				continue
			}
			w.enqueue(nb, cur.depth+1, cur.id)
		}
	}
}
