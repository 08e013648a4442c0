package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermanconnor/dsa-go/dfs"
	"github.com/hermanconnor/dsa-go/graph"
)

// buildBinaryTree returns the directed tree
//
//	1 -> 2, 1 -> 3, 2 -> 4, 2 -> 5, 3 -> 6, 3 -> 7
func buildBinaryTree(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(graph.WithDirected())
	for _, e := range [][2]string{{"1", "2"}, {"1", "3"}, {"2", "4"}, {"2", "5"}, {"3", "6"}, {"3", "7"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}
	return g
}

// TestDFSArgumentErrors covers the nil graph and missing start cases.
func TestDFSArgumentErrors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := graph.New()
	g.AddVertex("A")
	_, err = dfs.DFS(g, "ghost")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// TestDFSOptionViolations verifies invalid options fail fast.
func TestDFSOptionViolations(t *testing.T) {
	g := graph.New()
	g.AddVertex("A")

	for name, opt := range map[string]dfs.Option{
		"negative depth": dfs.WithMaxDepth(-1),
		"nil context":    dfs.WithContext(nil),
		"nil visit hook": dfs.WithOnVisit(nil),
	} {
		_, err := dfs.DFS(g, "A", opt)
		assert.ErrorIs(t, err, dfs.ErrOptionViolation, name)
	}
}

// TestDFSSingleVertex checks the smallest valid walk.
func TestDFSSingleVertex(t *testing.T) {
	g := graph.New()
	g.AddVertex("A")

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Empty(t, res.Parent)
	assert.Equal(t, map[string]bool{"A": true}, res.Visited)
}

// TestDFSPreorder verifies classic preorder on a binary tree.
func TestDFSPreorder(t *testing.T) {
	res, err := dfs.DFS(buildBinaryTree(t), "1")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "4", "5", "3", "6", "7"}, res.Order)
	assert.Equal(t, map[string]string{
		"2": "1", "3": "1", "4": "2", "5": "2", "6": "3", "7": "3",
	}, res.Parent)
}

// TestDFSDiamond verifies a shared vertex is visited once, through the
// branch that reaches it first.
func TestDFSDiamond(t *testing.T) {
	g := graph.New(graph.WithDirected())
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, "B", res.Parent["D"], "D is first reached while deep in the B branch")
}

// TestDFSUndirectedCycle verifies termination and single visits.
func TestDFSUndirectedCycle(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("C", "A", 0))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestDFSMaxDepth verifies capped vertices are visited but not expanded.
func TestDFSMaxDepth(t *testing.T) {
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("C", "D", 0))

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.False(t, res.Visited["D"])
}

// TestDFSOnVisit verifies hook order and abort propagation.
func TestDFSOnVisit(t *testing.T) {
	var seen []string
	_, err := dfs.DFS(buildBinaryTree(t), "1", dfs.WithOnVisit(func(id string) error {
		seen = append(seen, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "5", "3", "6", "7"}, seen)

	boom := errors.New("boom")
	_, err = dfs.DFS(buildBinaryTree(t), "1", dfs.WithOnVisit(func(id string) error {
		if id == "4" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom, "hook errors must surface wrapped")
}

// TestDFSContextCancelled verifies the walk stops on a dead context.
func TestDFSContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(buildBinaryTree(t), "1", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDFSUnreachable verifies vertices behind reversed edges stay unvisited.
func TestDFSUnreachable(t *testing.T) {
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("C", "A", 0))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.False(t, res.Visited["C"])
}
