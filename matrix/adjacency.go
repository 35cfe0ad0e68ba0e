// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tollway/core"
)

// AdjacencyMatrix is a dense snapshot of an undirected tolled graph.
// See the package documentation for the layout contract.
type AdjacencyMatrix struct {
	VertexIDs []string
	Points    []core.Point
	Weights   [][]float64
	Tolls     [][]float64

	index map[string]int // VertexID → row
}

// ToMatrix snapshots g into an AdjacencyMatrix. The matrix reflects one
// consistent state of g even while other goroutines mutate it.
//
// Implementation:
//   - Stage 0: Clone g under a single read lock.
//   - Stage 1: Read the insertion-ordered IDs and coordinates.
//   - Stage 2: Fill Weights with +Inf off the diagonal and 0 on it.
//   - Stage 3: Write every edge into both (i,j) and (j,i).
//
// Complexity: O(V^2 + E log E).
func ToMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	snap := g.Clone()
	ids := snap.Vertices()
	n := len(ids)
	am := &AdjacencyMatrix{
		VertexIDs: ids,
		Points:    make([]core.Point, n),
		Weights:   make([][]float64, n),
		Tolls:     make([][]float64, n),
		index:     make(map[string]int, n),
	}
	inf := math.Inf(1)
	for i, id := range ids {
		v, err := snap.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("matrix: snapshot %q: %w", id, err)
		}
		am.Points[i] = v.Point
		am.index[id] = i
		am.Weights[i] = make([]float64, n)
		am.Tolls[i] = make([]float64, n)
		for j := range am.Weights[i] {
			if j != i {
				am.Weights[i][j] = inf
			}
		}
	}

	for _, e := range snap.Edges() {
		i, ok := am.index[e.From]
		if !ok {
			return nil, fmt.Errorf("matrix: edge %s-%s: %w: %q", e.From, e.To, ErrUnknownVertex, e.From)
		}
		j, ok := am.index[e.To]
		if !ok {
			return nil, fmt.Errorf("matrix: edge %s-%s: %w: %q", e.From, e.To, ErrUnknownVertex, e.To)
		}
		am.Weights[i][j], am.Weights[j][i] = e.Weight, e.Weight
		am.Tolls[i][j], am.Tolls[j][i] = e.Toll, e.Toll
	}

	return am, nil
}

// FromMatrix builds a graph from ids and a square weight matrix.
//
// Steps:
//  1. Validate shape: len(weights) == len(ids), every row square (ErrNonSquare),
//     tolls/points lengths (ErrDimensionMismatch).
//  2. Validate structure: zero diagonal (ErrNonZeroDiagonal), no NaN cells
//     (core.ErrInvalidWeight, core.ErrInvalidToll), symmetric weights and
//     tolls within eps (ErrAsymmetry).
//  3. Add vertices in ids order, then every finite upper-triangle entry as an edge.
//
// Core errors (duplicate IDs, invalid weight or toll) are returned wrapped.
func FromMatrix(ids []string, weights [][]float64, opts ...Option) (*core.Graph, error) {
	o := gatherOptions(opts...)
	n := len(ids)

	// 1) Shape
	if len(weights) != n {
		return nil, fmt.Errorf("%w: %d ids, %d rows", ErrDimensionMismatch, n, len(weights))
	}
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(row), n)
		}
	}
	if o.tolls != nil {
		if len(o.tolls) != n {
			return nil, fmt.Errorf("%w: %d toll rows, want %d", ErrDimensionMismatch, len(o.tolls), n)
		}
		for i, row := range o.tolls {
			if len(row) != n {
				return nil, fmt.Errorf("%w: toll row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
			}
		}
	}
	if o.points != nil && len(o.points) != n {
		return nil, fmt.Errorf("%w: %d points, want %d", ErrDimensionMismatch, len(o.points), n)
	}

	// 2) Structure
	for i := 0; i < n; i++ {
		if weights[i][i] != 0 {
			return nil, fmt.Errorf("%w: w[%d][%d] = %v", ErrNonZeroDiagonal, i, i, weights[i][i])
		}
		for j := i + 1; j < n; j++ {
			if math.IsNaN(weights[i][j]) || math.IsNaN(weights[j][i]) {
				return nil, fmt.Errorf("matrix: cell (%d,%d): %w: NaN", i, j, core.ErrInvalidWeight)
			}
			if o.tolls != nil && (math.IsNaN(o.tolls[i][j]) || math.IsNaN(o.tolls[j][i])) {
				return nil, fmt.Errorf("matrix: cell (%d,%d): %w: NaN", i, j, core.ErrInvalidToll)
			}
			if !symmetric(weights[i][j], weights[j][i], o.epsilon) {
				return nil, fmt.Errorf("%w: w[%d][%d]=%v, w[%d][%d]=%v", ErrAsymmetry, i, j, weights[i][j], j, i, weights[j][i])
			}
			if o.tolls != nil && !symmetric(o.tolls[i][j], o.tolls[j][i], o.epsilon) {
				return nil, fmt.Errorf("%w: toll[%d][%d]=%v, toll[%d][%d]=%v", ErrAsymmetry, i, j, o.tolls[i][j], j, i, o.tolls[j][i])
			}
		}
	}

	// 3) Build
	g := core.NewGraph(core.WithCapacity(n))
	for i, id := range ids {
		var at core.Point
		if o.points != nil {
			at = o.points[i]
		}
		if err := g.AddVertex(id, at); err != nil {
			return nil, fmt.Errorf("matrix: vertex %d: %w", i, err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := weights[i][j]
			if math.IsInf(w, 1) {
				continue // absent
			}
			var edgeOpts []core.EdgeOption
			if o.tolls != nil && o.tolls[i][j] != 0 {
				edgeOpts = append(edgeOpts, core.WithToll(o.tolls[i][j]))
			}
			if err := g.AddEdge(ids[i], ids[j], w, edgeOpts...); err != nil {
				return nil, fmt.Errorf("matrix: cell (%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// ToGraph rebuilds a core.Graph from am. It is FromMatrix with am's own
// tolls and points.
func (am *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	if am == nil {
		return nil, ErrNilMatrix
	}
	opts := []Option{WithTolls(am.Tolls)}
	if am.Points != nil {
		opts = append(opts, WithPoints(am.Points))
	}

	return FromMatrix(am.VertexIDs, am.Weights, opts...)
}

// Index returns the row of id.
func (am *AdjacencyMatrix) Index(id string) (int, bool) {
	if am == nil {
		return -1, false
	}
	if am.index == nil {
		am.buildIndex()
	}
	i, ok := am.index[id]
	if !ok {
		return -1, false
	}

	return i, true
}

// At returns the weight and toll stored for (u, v). Absent edges report +Inf, 0.
func (am *AdjacencyMatrix) At(u, v string) (float64, float64, error) {
	if am == nil {
		return 0, 0, ErrNilMatrix
	}
	i, ok := am.Index(u)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownVertex, u)
	}
	j, ok := am.Index(v)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}
	var toll float64
	if am.Tolls != nil {
		toll = am.Tolls[i][j]
	}

	return am.Weights[i][j], toll, nil
}

// VertexCount returns the matrix dimension.
func (am *AdjacencyMatrix) VertexCount() int {
	if am == nil {
		return 0
	}

	return len(am.VertexIDs)
}

// buildIndex fills the ID lookup for matrices assembled by hand.
func (am *AdjacencyMatrix) buildIndex() {
	am.index = make(map[string]int, len(am.VertexIDs))
	for i, id := range am.VertexIDs {
		am.index[id] = i
	}
}

// symmetric compares a and b within eps; two +Inf entries are equal.
func symmetric(a, b, eps float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= eps
}
