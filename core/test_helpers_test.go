// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for tollway/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tollway/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NReaders = 50
	NLoops   = 50
)

// NewDiamond RETURNS the four-vertex tollway fixture:
//
//	A─(5, toll 3)─B─(5)─D
//	A─(1)─────────C─(1)─D
//
// Coordinates place A at the origin, B and C one unit away and D diagonally opposite.
func NewDiamond(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	MustNoError(t, g.AddVertex(VertexA, core.Point{X: 0, Y: 0}), "AddVertex(A)")
	MustNoError(t, g.AddVertex(VertexB, core.Point{X: 1, Y: 0}), "AddVertex(B)")
	MustNoError(t, g.AddVertex(VertexC, core.Point{X: 0, Y: 1}), "AddVertex(C)")
	MustNoError(t, g.AddVertex(VertexD, core.Point{X: 1, Y: 1}), "AddVertex(D)")
	MustNoError(t, g.AddEdge(VertexA, VertexB, 5, core.WithToll(3)), "AddEdge(A,B)")
	MustNoError(t, g.AddEdge(VertexB, VertexD, 5), "AddEdge(B,D)")
	MustNoError(t, g.AddEdge(VertexA, VertexC, 1), "AddEdge(A,C)")
	MustNoError(t, g.AddEdge(VertexC, VertexD, 1), "AddEdge(C,D)")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
// Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: expected error %v, got %v", op, target, err)
}

// MustNoErrorsFromChan drains errCh and FAILS on the first non-nil error.
// In concurrent tests, send only unexpected errors to errCh.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err == nil {
			continue
		}
		t.Fatalf("%s: unexpected concurrent error: %v", op, err)
	}
}
