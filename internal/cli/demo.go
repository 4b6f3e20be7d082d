package cli

import "github.com/arvoslab/grava/core"

// The demo commands operate on small fixed graphs so the output is
// reproducible and readable in a terminal.

// demoCity is a five-junction undirected road map used by walk and route:
//
//	A --4-- B --5-- D
//	 \      |      / \
//	  2     1     8   2
//	   \    |    /     \
//	    `-- C --'       E
//	        \____10____/
func demoCity() *core.Graph {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 8)
	_ = g.AddEdge("C", "E", 10)
	_ = g.AddEdge("D", "E", 2)
	return g
}

// demoMesh is a six-site undirected cable mesh used by span. Its MST from
// any root weighs 13.
func demoMesh() *core.Graph {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "D", "E", "F"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 8)
	_ = g.AddEdge("C", "E", 10)
	_ = g.AddEdge("D", "E", 2)
	_ = g.AddEdge("D", "F", 6)
	_ = g.AddEdge("E", "F", 3)
	return g
}

// demoTariff is a four-node directed graph with one negative edge (a
// rebate), used by matrix. It has no negative cycle.
func demoTariff() *core.Graph {
	g := core.NewGraph(core.WithDirected())
	for _, v := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 3)
	_ = g.AddEdge("A", "C", 8)
	_ = g.AddEdge("A", "D", -4)
	_ = g.AddEdge("B", "D", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "A", 2)
	_ = g.AddEdge("D", "C", 7)
	_ = g.AddEdge("D", "B", 4)
	return g
}
