// SPDX-License-Identifier: MIT
// Package forest: shared types, distance measures and sentinel errors.

package forest

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrDisconnected indicates that a spanning tree covering all vertices cannot be formed.
	ErrDisconnected = errors.New("forest: graph is disconnected")

	// ErrEdgeRange indicates an edge endpoint outside [0, N) or a self-loop.
	ErrEdgeRange = errors.New("forest: edge endpoint out of range")

	// ErrCycle indicates that the supplied edge set is not acyclic.
	ErrCycle = errors.New("forest: edges contain a cycle")

	// ErrComponentRange indicates a component index outside [0, ComponentsCount()).
	ErrComponentRange = errors.New("forest: component index out of range")

	// ErrNoStore indicates that Save was called on a forest with no attached store.
	ErrNoStore = errors.New("forest: no store attached")

	// ErrUnknownMeasure indicates an unsupported distance measure.
	ErrUnknownMeasure = errors.New("forest: unknown distance measure")

	// ErrUnknownMethod indicates an unsupported MST method name.
	ErrUnknownMethod = errors.New("forest: unknown MST method")

	// ErrBadCut indicates a negative cut count or one larger than the edge count.
	ErrBadCut = errors.New("forest: invalid cut count")

	// ErrEmpty indicates a forest over zero points.
	ErrEmpty = errors.New("forest: no points")
)

// MethodPrim selects Prim's algorithm (grow from vertex 0 using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Edge is an undirected edge between points From and To (indices into the
// point set) with a non-negative distance Weight.
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// SpanningForest is the capability the clustering pipeline consumes.
//
//   - IsSpanningTree reports whether the forest is one tree over all points.
//   - TreeEdges enumerates the edges of one component.
//   - Save persists the forest under key.
type SpanningForest interface {
	IsSpanningTree() bool
	TreeEdges(component int) ([]Edge, error)
	Save(key string) error
}

// DistanceMeasure selects how the Builder weighs the edge between two points.
type DistanceMeasure int

const (
	// Euclidean is the L2 distance ‖a−b‖₂.
	Euclidean DistanceMeasure = iota

	// Quadratic is the squared L2 distance ‖a−b‖₂².
	Quadratic

	// Manhattan is the L1 distance ‖a−b‖₁.
	Manhattan

	// Cosine is 1 − cos(a, b); zero vectors are at distance 1 from any
	// non-zero vector and 0 from each other.
	Cosine
)

var measureNames = [...]string{
	Euclidean: "euclidean",
	Quadratic: "quadratic",
	Manhattan: "manhattan",
	Cosine:    "cosine",
}

// String returns the lower-case name of the measure.
func (m DistanceMeasure) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return measureNames[m]
}

// Valid reports whether m is one of the supported measures.
func (m DistanceMeasure) Valid() bool {
	return m >= Euclidean && int(m) < len(measureNames)
}

// ParseDistanceMeasure maps a case-insensitive name to a DistanceMeasure.
func ParseDistanceMeasure(s string) (DistanceMeasure, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range measureNames {
		if n == name {
			return DistanceMeasure(i), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownMeasure, "%q", s)
}

// Distance returns the distance between a and b under m.
// a and b must have equal length. An invalid measure yields NaN.
func (m DistanceMeasure) Distance(a, b []float64) float64 {
	switch m {
	case Euclidean:
		return floats.Distance(a, b, 2)
	case Quadratic:
		d := floats.Distance(a, b, 2)
		return d * d
	case Manhattan:
		return floats.Distance(a, b, 1)
	case Cosine:
		na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
		switch {
		case na == 0 && nb == 0:
			return 0
		case na == 0 || nb == 0:
			return 1
		}
		// clamp rounding noise so identical directions give exactly 0
		return math.Max(0, 1-floats.Dot(a, b)/(na*nb))
	default:
		return math.NaN()
	}
}
