package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrGraphNil indicates Dijkstra received a nil *graph.Graph.
	ErrGraphNil = errors.New("dijkstra: graph is nil")
	// ErrSourceNotFound indicates the source ID is absent from the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")
	// ErrNotWeighted indicates the graph does not carry meaningful
	// weights; hop-count distances belong to BFS.
	ErrNotWeighted = errors.New("dijkstra: graph is not weighted")
	// ErrNegativeWeight indicates an edge weight below zero, which
	// breaks the greedy settle order.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")
	// ErrOptionViolation indicates an Option received an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option value")
)

// Options holds the knobs for a single run.
type Options struct {
	// MaxDistance prunes the search: vertices farther than this are
	// neither settled nor reported. Defaults to math.MaxInt64 (no limit).
	MaxDistance int64

	err error // first option violation, surfaced by Dijkstra
}

// Option mutates Options before the search starts.
type Option func(*Options)

// DefaultOptions returns the baseline configuration with no distance
// limit.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// WithMaxDistance caps the search radius at d. Negative values violate
// the option contract.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance %d is negative", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// Result is the outcome of one run.
type Result struct {
	// Dist maps each settled vertex to its minimal total weight from
	// the source. Vertices missing from the map are unreachable or
	// beyond MaxDistance.
	Dist map[string]int64
	// Parent maps each settled vertex (except the source) to its
	// predecessor on a shortest path.
	Parent map[string]string
}

// PathTo reconstructs a shortest path from the source to dest by
// walking Parent links backwards. It fails when dest was not settled.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("dijkstra: no path to %q", dest)
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
