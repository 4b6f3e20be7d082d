package dsu

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates Find or Union referenced an element that was
// never registered with MakeSet.
var ErrUnknownElement = errors.New("dsu: unknown element")

// DSU is a disjoint-set forest over string elements. Not safe for concurrent
// use — each algorithm invocation owns its DSU.
type DSU struct {
	parent map[string]string
	rank   map[string]int
	sets   int
}

// New returns an empty disjoint-set structure.
func New() *DSU {
	return &DSU{
		parent: make(map[string]string),
		rank:   make(map[string]int),
	}
}

// NewFrom returns a structure with every element of ids in its own singleton
// set.
func NewFrom(ids []string) *DSU {
	d := New()
	for _, id := range ids {
		d.MakeSet(id)
	}

	return d
}

// MakeSet registers id as a singleton set. Registering an existing element
// is a no-op.
// Complexity: O(1).
func (d *DSU) MakeSet(id string) {
	if _, ok := d.parent[id]; ok {
		return
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.sets++
}

// Find returns the representative of the set containing id, compressing the
// path as it walks. Returns ErrUnknownElement for unregistered elements.
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(id string) (string, error) {
	if _, ok := d.parent[id]; !ok {
		return "", fmt.Errorf("dsu: find %q: %w", id, ErrUnknownElement)
	}
	// Walk up to the root, pointing each node at its grandparent on the way.
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id, nil
}

// Union merges the sets containing u and v. Reports true if a merge
// happened, false if the elements already shared a set (the no-op case).
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(u, v string) (bool, error) {
	rootU, err := d.Find(u)
	if err != nil {
		return false, err
	}
	rootV, err := d.Find(v)
	if err != nil {
		return false, err
	}
	if rootU == rootV {
		return false, nil
	}

	// Attach the shallower tree under the deeper root.
	if d.rank[rootU] < d.rank[rootV] {
		d.parent[rootU] = rootV
	} else {
		d.parent[rootV] = rootU
		if d.rank[rootU] == d.rank[rootV] {
			d.rank[rootU]++
		}
	}
	d.sets--

	return true, nil
}

// SameSet reports whether u and v currently share a representative.
func (d *DSU) SameSet(u, v string) (bool, error) {
	rootU, err := d.Find(u)
	if err != nil {
		return false, err
	}
	rootV, err := d.Find(v)
	if err != nil {
		return false, err
	}

	return rootU == rootV, nil
}

// Sets returns the number of disjoint sets currently tracked.
func (d *DSU) Sets() int { return d.sets }

// Len returns the number of registered elements.
func (d *DSU) Len() int { return len(d.parent) }
