// File: distance.go
// Role: Pure coordinate metrics used as A* heuristics and for geometry-derived weights.
package core

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used by GreatCircleDistance.
const EarthRadiusMeters = 6371007.0

// Metric measures the distance between two points. Implementations must be
// pure, symmetric and non-negative.
type Metric func(a, b Point) float64

// EuclideanDistance returns the straight-line distance between a and b.
func EuclideanDistance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// TaxicabDistance returns the L1 (Manhattan) distance between a and b.
func TaxicabDistance(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// GreatCircleDistance treats X as longitude and Y as latitude (degrees) and
// returns the spherical surface distance in meters.
func GreatCircleDistance(a, b Point) float64 {
	la := s2.LatLngFromDegrees(a.Y, a.X)
	lb := s2.LatLngFromDegrees(b.Y, b.X)

	return la.Distance(lb).Radians() * EarthRadiusMeters
}

// ZeroDistance is the trivial metric; as a heuristic it turns A* into Dijkstra.
func ZeroDistance(_, _ Point) float64 { return 0 }

// Distance applies m to the coordinates of vertices u and v.
// Returns ErrUnknownVertex if either is absent.
func (g *Graph) Distance(u, v string, m Metric) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.vertices[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, u)
	}
	b, ok := g.vertices[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}

	return m(a.Point, b.Point), nil
}
