// SPDX-License-Identifier: MIT
// Package clustering: hard partition by cutting the heaviest forest edges.

package clustering

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/forest"
	"gonum.org/v1/gonum/mat"
)

// TreeCut removes the Clusters-1 heaviest edges of the spanning forest and
// returns a one-hot partition with one row per resulting component, ordered
// by each component's smallest point index.
type TreeCut struct {
	// Clusters is the number of trees to leave after cutting (≥1).
	Clusters int
}

var _ Model = TreeCut{}

// Transform implements Model. prev and workers are ignored.
func (m TreeCut) Transform(points *mat.Dense, f forest.SpanningForest, _ int, _ *mat.Dense) (*mat.Dense, error) {
	if m.Clusters < 1 {
		return nil, errors.Wrapf(ErrBadParameter, "tree-cut clusters=%d", m.Clusters)
	}
	if points == nil || f == nil {
		return nil, errors.Wrap(ErrForestMismatch, "tree-cut: nil points or forest")
	}
	n, _ := points.Dims()

	tree, err := asForest(f, n)
	if err != nil {
		return nil, err
	}
	cuts := min(m.Clusters-1, len(tree.Edges()))
	assign, err := tree.Cut(cuts)
	if err != nil {
		return nil, errors.Wrap(err, "tree-cut")
	}

	k := 0
	for _, a := range assign {
		k = max(k, a+1)
	}
	partition := mat.NewDense(k, n, nil)
	for col, row := range assign {
		partition.Set(row, col, 1)
	}

	return partition, nil
}

// asForest returns f as a *forest.Forest over n points, rebuilding it from
// component 0's edges when f is some other SpanningForest implementation.
func asForest(f forest.SpanningForest, n int) (*forest.Forest, error) {
	if tree, ok := f.(*forest.Forest); ok {
		if tree.Len() != n {
			return nil, errors.Wrapf(ErrForestMismatch, "forest spans %d points, have %d", tree.Len(), n)
		}
		return tree, nil
	}
	edges, err := f.TreeEdges(0)
	if err != nil {
		return nil, errors.Wrap(err, "tree-cut: tree edges")
	}
	tree, err := forest.New(n, edges)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "tree-cut: rebuild forest"), ErrForestMismatch)
	}

	return tree, nil
}
