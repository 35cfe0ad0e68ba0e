// Package core provides the thread-safe, in-memory road network used by every
// search in tollway.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, simple: no self-loops, no parallel edges.
//   - Every vertex carries a planar Point used by A* heuristics and by
//     AddGeometricEdge to derive weights from geometry.
//   - Every edge has a Weight >= 0 and an optional Toll with 0 <= Toll <= Weight.
//     A coupon spent on an edge waives its toll, so the discounted cost is
//     Weight - Toll.
//   - Vertices are indexed by insertion order. That index is the canonical
//     ordering for Vertices(), Neighbors(), Edges() and matrix conversion.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, at Point) error      // O(1)
//	HasVertex(id string) bool                 // O(1)
//	Vertex(id string) (Vertex, error)         // O(1)
//	Index(id string) (int, bool)              // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, w float64, opts ...EdgeOption) error   // O(1)
//	AddGeometricEdge(u, v string, m Metric, opts ...EdgeOption) error
//	HasEdge(u, v string) bool                 // O(1)
//	Edge(u, v string) (Edge, error)           // O(1)
//
//	// Query
//	Neighbors(id string) ([]Edge, error)      // O(d·log d), insertion order
//	NeighborIDs(id string) ([]string, error)  // O(d·log d)
//	Vertices() []string                       // O(V)
//	Edges() []Edge                            // O(E·log E), each edge once
//	Stats() *GraphStats                       // O(V+E)
//
//	// Cloning
//	Clone() *Graph                            // O(V+E), indices preserved
//
// Errors:
//
//	ErrEmptyVertexID, ErrDuplicateVertex, ErrUnknownVertex, ErrEdgeNotFound,
//	ErrInvalidWeight, ErrInvalidToll, ErrLoopNotAllowed, ErrDuplicateEdge.
//
// All errors are sentinels; wrapped variants carry the offending IDs and are
// matched with errors.Is.
//
// Concurrency:
//
// A single sync.RWMutex guards the catalog. Construction may happen from many
// goroutines; once built, any number of searches may read the graph
// concurrently without further coordination.
package core
