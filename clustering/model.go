// SPDX-License-Identifier: MIT
// Package clustering: the Model contract and sentinel errors.

package clustering

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/forest"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoPartition indicates that a model requiring a previous partition got none.
	ErrNoPartition = errors.New("clustering: previous partition required")

	// ErrBadParameter indicates an invalid model parameter.
	ErrBadParameter = errors.New("clustering: invalid parameter")

	// ErrForestMismatch indicates the forest does not span the given points.
	ErrForestMismatch = errors.New("clustering: forest does not match points")

	// ErrUnknownModel indicates an unsupported model kind in a Spec.
	ErrUnknownModel = errors.New("clustering: unknown model kind")
)

// Model is one clustering transform.
//
// points is N×D, f spans the same N points, workers bounds internal
// parallelism and prev is the K'×N partition from the previous step (nil on
// the first step unless the caller supplied one). The result is a fresh K×N
// matrix that the caller owns.
type Model interface {
	Transform(points *mat.Dense, f forest.SpanningForest, workers int, prev *mat.Dense) (*mat.Dense, error)
}

// ModelFunc adapts an ordinary function to Model.
type ModelFunc func(points *mat.Dense, f forest.SpanningForest, workers int, prev *mat.Dense) (*mat.Dense, error)

// Transform calls fn.
func (fn ModelFunc) Transform(points *mat.Dense, f forest.SpanningForest, workers int, prev *mat.Dense) (*mat.Dense, error) {
	return fn(points, f, workers, prev)
}
