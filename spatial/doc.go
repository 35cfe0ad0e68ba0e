// Package spatial snaps arbitrary coordinates onto the vertices of a
// core.Graph.
//
// An Index is an R-tree (github.com/dhconnelly/rtreego) over the vertex
// points, built once from a graph snapshot. Queries never touch the graph
// again, so an Index stays valid (but stale) if the graph grows later.
//
// Distances are planar Euclidean on (X, Y). Ties are broken by vertex
// insertion order, so results are deterministic.
//
//	idx, _ := spatial.NewIndex(g)
//	id, _ := idx.Nearest(core.Point{X: 1.2, Y: 3.9})
package spatial
