package bfs_test

import (
	"fmt"

	"github.com/hermanconnor/dsa-go/bfs"
	"github.com/hermanconnor/dsa-go/graph"
)

// ExampleBFS walks a small undirected tree and prints the layer order.
func ExampleBFS() {
	g := graph.New()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("A", "C", 0)
	_ = g.AddEdge("B", "D", 0)

	res, _ := bfs.BFS(g, "A")
	fmt.Println(res.Order)
	fmt.Println(res.Depth["D"])
	// Output:
	// [A B C D]
	// 2
}

// ExampleResult_PathTo reconstructs a fewest-hops path.
func ExampleResult_PathTo() {
	g := graph.New()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)
	_ = g.AddEdge("A", "C", 0)
	_ = g.AddEdge("C", "D", 0)

	res, _ := bfs.BFS(g, "A")
	path, _ := res.PathTo("D")
	fmt.Println(path)
	// Output:
	// [A C D]
}
