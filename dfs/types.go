package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil indicates an entry point received a nil *graph.Graph.
	ErrGraphNil = errors.New("dfs: graph is nil")
	// ErrStartVertexNotFound indicates the start ID is absent from the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
	// ErrOptionViolation indicates an Option received an invalid value.
	ErrOptionViolation = errors.New("dfs: invalid option value")
	// ErrNotDirected indicates TopologicalSort was asked to order an
	// undirected graph, where "before" has no meaning.
	ErrNotDirected = errors.New("dfs: graph is not directed")
	// ErrCycleDetected indicates the directed graph cannot be
	// topologically ordered.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Options holds the knobs and hooks for a single DFS run.
type Options struct {
	// Ctx cancels the walk between visits.
	Ctx context.Context
	// OnVisit runs once per visited vertex; a non-nil return aborts the
	// walk and surfaces wrapped from DFS.
	OnVisit func(id string) error
	// MaxDepth caps exploration: vertices at this depth are visited but
	// not expanded. Zero means no limit.
	MaxDepth int

	err error // first option violation, surfaced by DFS
}

// Option mutates Options before the walk starts.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: background
// context, no depth limit, no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string) error { return nil },
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
func WithOnVisit(fn func(id string) error) Option {
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

// Result is the outcome of one DFS run.
type Result struct {
	// Order lists vertices in preorder: each appears when first reached.
	Order []string
	// Parent maps each visited vertex (except the start) to the vertex
	// it was first reached from.
	Parent map[string]string
	// Visited is the set of reached vertices.
	Visited map[string]bool
}
