package bellmanford

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil indicates BellmanFord received a nil *graph.Graph.
	ErrGraphNil = errors.New("bellmanford: graph is nil")
	// ErrSourceNotFound indicates the source ID is absent from the graph.
	ErrSourceNotFound = errors.New("bellmanford: source vertex not found")
	// ErrNotWeighted indicates the graph does not carry meaningful weights.
	ErrNotWeighted = errors.New("bellmanford: graph is not weighted")
	// ErrNotDirected indicates the graph is undirected; a mirrored
	// negative edge would form a spurious two-vertex negative cycle.
	ErrNotDirected = errors.New("bellmanford: graph is not directed")
	// ErrNegativeCycle indicates a negative-weight cycle reachable from
	// the source: shortest distances are unbounded below.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")
	// ErrOptionViolation indicates an Option received an invalid value.
	ErrOptionViolation = errors.New("bellmanford: invalid option value")
)

// Options holds the knobs for a single run.
type Options struct {
	// Ctx cancels the computation between relaxation rounds.
	Ctx context.Context

	err error // first option violation, surfaced by BellmanFord
}

// Option mutates Options before the run starts.
type Option func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
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

// Result is the outcome of one run.
type Result struct {
	// Dist maps each reached vertex to its minimal total weight from
	// the source. Vertices missing from the map are unreachable.
	Dist map[string]int64
	// Parent maps each reached vertex (except the source) to its
	// predecessor on a shortest path.
	Parent map[string]string
}

// PathTo reconstructs a shortest path from the source to dest by
// walking Parent links backwards. It fails when dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("bellmanford: no path to %q", dest)
	}
	var path []string
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
