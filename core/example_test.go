package core_test

import (
	"fmt"

	"github.com/arvoslab/grava/core"
)

// ExampleGraph builds a small undirected road network and lists the
// neighborhood of one junction.
func ExampleGraph() {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 4)

	nbrs, _ := g.Neighbors("A")
	for _, e := range nbrs {
		fmt.Printf("%s-%s w=%d\n", e.From, e.To, e.Weight)
	}
	// Output:
	// A-B w=1
	// A-C w=4
}

// ExampleGraph_directed shows that directed edges are one-way.
func ExampleGraph_directed() {
	g := core.NewGraph(core.WithDirected())
	_ = g.AddVertex("src")
	_ = g.AddVertex("dst")
	_ = g.AddEdge("src", "dst", 10)

	fmt.Println(g.HasEdge("src", "dst"))
	fmt.Println(g.HasEdge("dst", "src"))
	// Output:
	// true
	// false
}
