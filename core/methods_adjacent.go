// File: methods_adjacent.go
// Role: Adjacency queries used by the search engine, plus Clone and Equal.
//
// Determinism:
//   - Neighbors() is ordered by the neighbor's insertion index, so relaxation
//     order (and therefore tie-breaking between equal-cost paths) is stable
//     across runs and independent of map iteration order.
package core

import (
	"fmt"
	"sort"
)

// Neighbors returns every edge incident to id, oriented From == id.
//
// Implementation:
//   - Stage 1: Under the read lock, verify presence (ErrUnknownVertex).
//   - Stage 2: Materialize the adjacency bucket into a fresh slice.
//   - Stage 3: Sort by neighbor insertion index.
//
// Returns an empty (non-nil) slice for an isolated vertex.
// Complexity: O(d log d) where d = Degree(id).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	out := make([]Edge, 0, len(adj))
	for v, a := range adj {
		out = append(out, Edge{From: id, To: v, Weight: a.weight, Toll: a.toll})
	}
	sort.Slice(out, func(i, j int) bool {
		return g.vertices[out[i].To].index < g.vertices[out[j].To].index
	})

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in neighbor insertion order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// Clone returns a deep copy of g. Vertex indices are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithCapacity(len(g.order)))
	for _, id := range g.order {
		v := *g.vertices[id]
		c.vertices[id] = &v
		c.order = append(c.order, id)
		adj := make(map[string]edgeAttr, len(g.adjacency[id]))
		for to, a := range g.adjacency[id] {
			adj[to] = a
		}
		c.adjacency[id] = adj
	}
	c.edgeCount = g.edgeCount

	return c
}

// Equal reports whether g and other hold the same vertex IDs, coordinates
// and edges with identical weights and tolls. Insertion order is ignored.
//
// other is cloned first, so the two graphs are never locked together.
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}
	o := other.Clone()

	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.vertices) != len(o.vertices) || g.edgeCount != o.edgeCount {
		return false
	}
	for id, v := range g.vertices {
		ov, ok := o.vertices[id]
		if !ok || v.Point != ov.Point {
			return false
		}
		adj, oadj := g.adjacency[id], o.adjacency[id]
		if len(adj) != len(oadj) {
			return false
		}
		for to, a := range adj {
			if b, ok := oadj[to]; !ok || a != b {
				return false
			}
		}
	}

	return true
}
