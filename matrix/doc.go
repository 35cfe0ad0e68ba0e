// Package matrix converts between core.Graph and a dense adjacency-matrix form.
//
// Layout:
//
//   - Row/column i belongs to VertexIDs[i]; the order is the graph's insertion
//     order, so ToMatrix is deterministic.
//   - Weights[i][i] == 0. An absent edge is +Inf (never 0, which is a legal
//     edge weight).
//   - Tolls is parallel to Weights; absent edges and toll-free edges hold 0.
//   - Points[i] is the coordinate of VertexIDs[i].
//
// FromMatrix is the inverse: it validates shape, diagonal and symmetry, then
// builds a graph through the core API, so every core invariant (non-negative
// finite weights, 0 <= toll <= weight, unique IDs) is enforced on the way in.
//
// Round trip: FromMatrix(ToMatrix(g)) reproduces vertices, order, edges,
// weights, tolls and coordinates.
package matrix
