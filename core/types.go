// File: types.go
// Role: Point, Vertex, Edge, Graph, options, sentinel errors and NewGraph.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrDuplicateVertex - AddVertex on an ID that is already present.
//	ErrUnknownVertex   - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrInvalidWeight   - negative, NaN or infinite edge weight.
//	ErrInvalidToll     - negative or NaN toll, or a toll above the edge weight.
//	ErrLoopNotAllowed  - self-loop (graphs are simple).
//	ErrDuplicateEdge   - second edge between the same endpoints (graphs are simple).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already present.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownVertex indicates an operation referenced a non-existent vertex.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrInvalidToll indicates a negative or NaN toll, or a toll larger than the edge weight.
	ErrInvalidToll = errors.New("core: invalid edge toll")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Point is a planar coordinate attached to every vertex.
// For GreatCircleDistance, X is the longitude and Y the latitude, in degrees.
type Point struct {
	X float64
	Y float64
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; Point places it in the
// plane for distance heuristics and geometry-derived weights.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Point is the vertex coordinate.
	Point Point

	// index is the insertion position, stable for the lifetime of the graph.
	index int
}

// Edge represents one undirected connection, reported from the point of view
// of the From endpoint.
//
// Weight is the full traversal cost. Toll is the part of Weight that a coupon
// waives, so 0 <= Toll <= Weight always holds.
type Edge struct {
	// From is the vertex the edge is observed from.
	From string

	// To is the opposite endpoint.
	To string

	// Weight is the full cost of traversing the edge.
	Weight float64

	// Toll is the waivable share of Weight (0 for toll-free edges).
	Toll float64
}

// Discounted returns the traversal cost when a coupon waives the toll.
func (e Edge) Discounted() float64 { return e.Weight - e.Toll }

// Tolled reports whether spending a coupon on e changes its cost.
func (e Edge) Tolled() bool { return e.Toll > 0 }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeAttr)

// WithToll sets the waivable toll of an edge. It is validated by AddEdge.
func WithToll(toll float64) EdgeOption {
	return func(a *edgeAttr) { a.toll = toll }
}

// edgeAttr is the per-pair payload stored on both sides of the adjacency.
type edgeAttr struct {
	weight float64
	toll   float64
}

// Graph is the core in-memory graph data structure: simple, undirected,
// non-negatively weighted, with optional per-edge tolls.
//
// mu protects every field below it. order lists vertex IDs by insertion and
// is the canonical ordering for matrix conversion and deterministic iteration.
type Graph struct {
	mu sync.RWMutex // guards vertices, order, adjacency and edgeCount

	capacity int // construction hint only

	vertices map[string]*Vertex // vertex ID → Vertex
	order    []string           // insertion order; order[v.index] == v.ID

	// adjacency[u][v] holds the attributes of edge {u,v}; mirrored in adjacency[v][u].
	adjacency map[string]map[string]edgeAttr

	edgeCount int // number of undirected edges
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) (plus the optional capacity reservation).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.adjacency = make(map[string]map[string]edgeAttr, g.capacity)

	return g
}
