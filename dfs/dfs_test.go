package dfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/arvoslab/grava/core"
	"github.com/arvoslab/grava/dfs"
)

// buildBranching returns the undirected graph
//
//	A—B, A—C, B—D
//
// whose pre-order DFS from A is A, B, D, C (neighbors in insertion order).
func buildBranching(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "D"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%s): %v", v, err)
		}
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}} {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}

	return g
}

func TestRun_NilGraph(t *testing.T) {
	if _, err := dfs.Run(nil, "A"); !errors.Is(err, dfs.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestRun_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := dfs.Run(g, "ghost")
	if !errors.Is(err, dfs.ErrSourceNotFound) || !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("expected wrapped vertex-not-found, got %v", err)
	}
}

func TestRun_PreOrder(t *testing.T) {
	g := buildBranching(t)
	res, err := dfs.Run(g, "A")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("Order = %v, want %v", res.Order, want)
	}
	wantParent := map[string]string{"B": "A", "D": "B", "C": "A"}
	if !reflect.DeepEqual(res.Parent, wantParent) {
		t.Fatalf("Parent = %v, want %v", res.Parent, wantParent)
	}
}

func TestRun_EachVertexOnce(t *testing.T) {
	// Cycle A—B—C—A: every vertex appears exactly once despite the loop.
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "A", 1)

	res, err := dfs.Run(g, "A")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	seen := map[string]int{}
	for _, v := range res.Order {
		seen[v]++
	}
	for v, n := range seen {
		if n != 1 {
			t.Fatalf("vertex %s visited %d times", v, n)
		}
	}
	if len(res.Order) != 3 {
		t.Fatalf("Order = %v, want 3 vertices", res.Order)
	}
}

func TestRun_ReachableSetOnly(t *testing.T) {
	g := buildBranching(t)
	_ = g.AddVertex("island")

	res, err := dfs.Run(g, "A")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Visited["island"] {
		t.Fatal("unreachable vertex must not be visited")
	}
	if len(res.Order) != 4 {
		t.Fatalf("Order = %v, want the 4 reachable vertices", res.Order)
	}
}

func TestRun_FullTraversalForest(t *testing.T) {
	g := buildBranching(t)
	_ = g.AddVertex("X")
	_ = g.AddVertex("Y")
	_ = g.AddEdge("X", "Y", 1)

	res, err := dfs.Run(g, "A", dfs.WithFullTraversal())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := []string{"A", "B", "D", "C", "X", "Y"}; !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("Order = %v, want %v", res.Order, want)
	}
	// Two trees: X is a root, so it has no parent entry.
	if _, ok := res.Parent["X"]; ok {
		t.Fatal("component root must not have a parent")
	}
	if res.Parent["Y"] != "X" {
		t.Fatalf("Parent[Y] = %q, want X", res.Parent["Y"])
	}
}

func TestRun_MaxDepth(t *testing.T) {
	g := buildBranching(t)
	res, err := dfs.Run(g, "A", dfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Depth limit 1: A and its direct neighbors only; D is two hops away.
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("Order = %v, want %v", res.Order, want)
	}
}

func TestRun_HookOrderAndAbort(t *testing.T) {
	g := buildBranching(t)

	var exits []string
	res, err := dfs.Run(g, "A", dfs.WithOnExit(func(id string) error {
		exits = append(exits, id)

		return nil
	}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Post-order: children before parents.
	if want := []string{"D", "B", "C", "A"}; !reflect.DeepEqual(exits, want) {
		t.Fatalf("exit order = %v, want %v", exits, want)
	}
	if len(res.Order) != 4 {
		t.Fatalf("Order = %v", res.Order)
	}

	boom := errors.New("boom")
	if _, err = dfs.Run(g, "A", dfs.WithOnVisit(func(id string) error {
		if id == "D" {
			return boom
		}

		return nil
	})); !errors.Is(err, boom) {
		t.Fatalf("expected hook abort, got %v", err)
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	g := buildBranching(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dfs.Run(g, "A", dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_DoesNotMutateGraph(t *testing.T) {
	g := buildBranching(t)
	beforeV := g.Vertices()
	beforeE := g.Edges()

	if _, err := dfs.Run(g, "A", dfs.WithFullTraversal()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(beforeV, g.Vertices()) || !reflect.DeepEqual(beforeE, g.Edges()) {
		t.Fatal("DFS mutated the input graph")
	}
}
