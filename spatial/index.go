// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: R-tree backed nearest-vertex lookups.

package spatial

import (
	"errors"
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tollway/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned by NewIndex for a nil graph.
	ErrGraphNil = errors.New("spatial: graph is nil")

	// ErrEmptyIndex is returned by queries against an index with no vertices.
	ErrEmptyIndex = errors.New("spatial: index is empty")

	// ErrInvalidPoint is returned for a query point with NaN or Inf coordinates.
	ErrInvalidPoint = errors.New("spatial: invalid query point")

	// ErrInvalidK is returned by NearestK for k < 1.
	ErrInvalidK = errors.New("spatial: k must be positive")
)

// R-tree fan-out bounds.
const (
	minChildren = 25
	maxChildren = 50

	// pointTol is the half-side of the box stored for every vertex.
	pointTol = 1e-9
)

// Hit is one query answer.
type Hit struct {
	ID       string
	Point    core.Point
	Distance float64
}

// item is the rtreego.Spatial stored per vertex.
type item struct {
	id    string
	at    core.Point
	order int
	box   rtreego.Rect
}

func (it *item) Bounds() rtreego.Rect { return it.box }

// Index answers nearest-vertex queries over a fixed set of points.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex bulk-loads every vertex of g into a fresh R-tree.
// An empty graph yields an empty index; its queries return ErrEmptyIndex.
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	objs := make([]rtreego.Spatial, 0, len(ids))
	for i, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("spatial: snapshot vertex %q: %w", id, err)
		}
		objs = append(objs, &item{
			id:    id,
			at:    v.Point,
			order: i,
			box:   rtreego.Point{v.Point.X, v.Point.Y}.ToRect(pointTol),
		})
	}

	return &Index{
		tree: rtreego.NewTree(2, minChildren, maxChildren, objs...),
		size: len(objs),
	}, nil
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the ID of the vertex closest to p.
func (ix *Index) Nearest(p core.Point) (string, error) {
	hits, err := ix.NearestK(p, 1)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return "", ErrEmptyIndex
	}

	return hits[0].ID, nil
}

// NearestK returns up to k vertices ordered by distance from p, nearest first.
//
// Implementation:
//   - Stage 1: Ask the R-tree for k candidates; their farthest exact distance
//     bounds the answer.
//   - Stage 2: Re-collect everything inside that radius so equidistant
//     vertices compete fairly, then sort by (distance, insertion order).
func (ix *Index) NearestK(p core.Point, k int) ([]Hit, error) {
	if err := ix.check(p); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidK, k)
	}
	if k > ix.size {
		k = ix.size
	}

	// Stage 1
	q := rtreego.Point{p.X, p.Y}
	bound := 0.0
	for _, s := range ix.tree.NearestNeighbors(k, q) {
		if s == nil {
			continue
		}
		if d := core.EuclideanDistance(p, s.(*item).at); d > bound {
			bound = d
		}
	}

	// Stage 2
	hits := ix.within(p, bound)
	if len(hits) > k {
		hits = hits[:k]
	}

	return hits, nil
}

// Within returns every vertex at most radius away from p, nearest first.
func (ix *Index) Within(p core.Point, radius float64) ([]Hit, error) {
	if err := ix.check(p); err != nil {
		return nil, err
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: radius %v", ErrInvalidPoint, radius)
	}

	return ix.within(p, radius), nil
}

func (ix *Index) check(p core.Point) error {
	if ix.size == 0 {
		return ErrEmptyIndex
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidPoint, p.X, p.Y)
	}

	return nil
}

// within scans the box of half-side radius around p and keeps the points
// inside the circle.
func (ix *Index) within(p core.Point, radius float64) []Hit {
	pad := radius + pointTol*math.Max(1, radius)
	box, err := rtreego.NewRect(rtreego.Point{p.X - pad, p.Y - pad}, []float64{2 * pad, 2 * pad})
	if err != nil {
		return nil
	}

	found := ix.tree.SearchIntersect(box)
	type ranked struct {
		hit   Hit
		order int
	}
	rs := make([]ranked, 0, len(found))
	for _, s := range found {
		it := s.(*item)
		d := core.EuclideanDistance(p, it.at)
		if d > radius {
			continue
		}
		rs = append(rs, ranked{hit: Hit{ID: it.id, Point: it.at, Distance: d}, order: it.order})
	}
	slices.SortFunc(rs, func(a, b ranked) int {
		switch {
		case a.hit.Distance < b.hit.Distance:
			return -1
		case a.hit.Distance > b.hit.Distance:
			return 1
		}

		return a.order - b.order
	})

	out := make([]Hit, len(rs))
	for i, r := range rs {
		out[i] = r.hit
	}

	return out
}
