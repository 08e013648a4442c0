package bellmanford_test

import (
	"fmt"

	"github.com/hermanconnor/dsa-go/bellmanford"
	"github.com/hermanconnor/dsa-go/graph"
)

// ExampleBellmanFord routes through a rebate edge Dijkstra would reject.
func ExampleBellmanFord() {
	g := graph.New(graph.WithDirected(), graph.WithWeighted())
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", -2)
	_ = g.AddEdge("A", "C", 3)

	res, _ := bellmanford.BellmanFord(g, "A")
	path, _ := res.PathTo("C")
	fmt.Println(res.Dist["C"])
	fmt.Println(path)
	// Output:
	// 2
	// [A B C]
}
