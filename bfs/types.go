package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil indicates BFS received a nil *graph.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")
	// ErrStartVertexNotFound indicates the start ID is absent from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
	// ErrWeightedGraph indicates the graph carries meaningful weights,
	// which hop-count layering cannot honor.
	ErrWeightedGraph = errors.New("bfs: weighted graph not supported")
	// ErrOptionViolation indicates an Option received an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option value")
)

// Options holds the knobs and hooks for a single BFS run.
// Zero hooks are replaced by no-ops in DefaultOptions.
type Options struct {
	// Ctx cancels the walk between visits.
	Ctx context.Context
	// OnVisit runs once per visited vertex with its depth; a non-nil
	// return aborts the walk and surfaces wrapped from BFS.
	OnVisit func(id string, depth int) error
	// MaxDepth caps exploration: vertices at this depth are visited but
	// not expanded. Zero means no limit.
	MaxDepth int
	// FilterNeighbor prunes the edge curr->neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error // first option violation, surfaced by BFS
}

// Option mutates Options before the walk starts.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: background
// context, no depth limit, keep-everything filter, no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext installs ctx for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnVisit installs fn as the per-vertex visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnVisit hook", ErrOptionViolation)
			return
		}
		o.OnVisit = fn
	}
}

// WithMaxDepth caps the walk at depth d. Zero lifts the limit;
// negative values violate the option contract.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth %d is negative", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs fn to prune individual edges.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil FilterNeighbor hook", ErrOptionViolation)
			return
		}
		o.FilterNeighbor = fn
	}
}

// Result is the outcome of one BFS run.
type Result struct {
	// Order lists vertices in visit sequence, start first.
	Order []string
	// Depth maps each reached vertex to its hop count from the start.
	Depth map[string]int
	// Parent maps each reached vertex (except the start) to its
	// predecessor in the BFS tree.
	Parent map[string]string
}

// PathTo reconstructs the fewest-hops path from the start vertex to
// dest by walking Parent links backwards. It fails when dest was never
// reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
