// Package dsu provides the union-find (disjoint-set) capability consumed by
// Kruskal for cycle detection.
//
// The structure tracks which vertices belong to the same connected component
// under two standard optimizations: iterative path compression in Find and
// union by rank in Union, giving near-constant amortized time per operation
// (inverse Ackermann).
//
// Elements must be registered with MakeSet before Find or Union touches
// them; operations on unregistered elements return ErrUnknownElement rather
// than silently creating state.
package dsu
