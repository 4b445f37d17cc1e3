// SPDX-License-Identifier: MIT
// Package: forest
//
// builder.go - minimum spanning tree construction from raw point coordinates.
//
// Contract:
//   • Options are functional (type BuilderOption func(*Builder)) and panic on
//     meaningless inputs; Build itself never panics on user input.
//   • The worker count bounds the goroutines computing pairwise distances.
//   • The produced forest is a single spanning tree over all points.

package forest

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/matrix"
	"github.com/katalvlaran/mstcluster/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Builder turns an N×D point set into a minimum spanning tree over the
// complete graph of pairwise distances.
type Builder struct {
	method string
	store  storage.Store
	logger *zap.SugaredLogger
}

// BuilderOption customizes a Builder.
type BuilderOption func(*Builder)

// WithMethod selects MethodKruskal (default) or MethodPrim.
// Panics on any other value.
func WithMethod(method string) BuilderOption {
	if method != MethodKruskal && method != MethodPrim {
		panic("forest: WithMethod(" + method + ")")
	}
	return func(b *Builder) { b.method = method }
}

// WithStore attaches s to every forest the builder produces, enabling Save.
// Panics on nil.
func WithStore(s storage.Store) BuilderOption {
	if s == nil {
		panic("forest: WithStore(nil)")
	}
	return func(b *Builder) { b.store = s }
}

// WithLogger sets the logger used for build diagnostics. Panics on nil.
func WithLogger(l *zap.SugaredLogger) BuilderOption {
	if l == nil {
		panic("forest: WithLogger(nil)")
	}
	return func(b *Builder) { b.logger = l }
}

// NewBuilder returns a Builder using Kruskal, no store and a no-op logger.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		method: MethodKruskal,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Method returns the configured MST method.
func (b *Builder) Method() string { return b.method }

// Build computes the minimum spanning tree of points under measure.
//
// Steps:
//  1. Validate points (non-empty, finite) and measure; clamp workers to ≥1.
//  2. Compute all n(n-1)/2 pairwise edges, one row of the upper triangle per
//     task, at most workers tasks in flight.
//  3. Run Kruskal or Prim (root 0).
//  4. Wrap the tree edges in a Forest and attach the store.
//
// Complexity: O(n²·D / workers) for distances, O(n² log n) for the MST,
// O(n²) memory for the candidate edge list.
func (b *Builder) Build(points *mat.Dense, workers int, measure DistanceMeasure) (*Forest, error) {
	// 1. Validate.
	if err := matrix.ValidatePoints(points); err != nil {
		return nil, errors.Wrap(err, "forest: build")
	}
	if !measure.Valid() {
		return nil, errors.Wrapf(ErrUnknownMeasure, "measure %d", int(measure))
	}
	if workers < 1 {
		workers = 1
	}
	n, _ := points.Dims()
	start := time.Now()

	// 2. Pairwise edges.
	edges, err := pairwiseEdges(points, workers, measure)
	if err != nil {
		return nil, err
	}

	// 3. MST.
	var tree []Edge
	var total float64
	switch b.method {
	case MethodPrim:
		tree, total, err = Prim(n, edges, 0)
	default:
		tree, total, err = Kruskal(n, edges)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "forest: %s", b.method)
	}

	// 4. Forest.
	f, err := New(n, tree)
	if err != nil {
		return nil, err
	}
	f.store = b.store

	b.logger.Debugw("spanning forest built",
		"points", n,
		"edges", len(tree),
		"weight", total,
		"method", b.method,
		"measure", measure.String(),
		"workers", workers,
		"elapsed", time.Since(start),
	)

	return f, nil
}

// pairwiseEdges returns the upper-triangle edges (i<j) in row-major order.
// Row i occupies the slice starting at offset(i) = i*(2n-i-1)/2.
func pairwiseEdges(points *mat.Dense, workers int, measure DistanceMeasure) ([]Edge, error) {
	n, _ := points.Dims()
	edges := make([]Edge, n*(n-1)/2)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			a := points.RawRowView(i)
			base := i * (2*n - i - 1) / 2
			for j := i + 1; j < n; j++ {
				edges[base+j-i-1] = Edge{From: i, To: j, Weight: measure.Distance(a, points.RawRowView(j))}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "forest: pairwise distances")
	}

	return edges, nil
}
