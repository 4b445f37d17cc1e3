// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the nil/shape/finite checks used by the
//    pipeline boundary and the forest builder.
//  - Return sentinel errors so call sites can wrap uniformly.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	opValidatePoints  = "ValidatePoints"
	opValidateColumns = "ValidateColumns"
)

// ValidateNotEmpty ensures m is non-nil and has at least one row and column.
// Complexity: O(1).
func ValidateNotEmpty(m *mat.Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.IsEmpty() {
		return ErrBadShape
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return ErrBadShape
	}

	return nil
}

// ValidatePoints checks an N×D point set: non-nil, non-empty, all values finite.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrNaNInf (wrapped with the offending coordinates).
//
// Complexity: O(N·D).
func ValidatePoints(points *mat.Dense) error {
	if err := ValidateNotEmpty(points); err != nil {
		return matrixErrorf(opValidatePoints, err)
	}
	r, _ := points.Dims()
	for i := 0; i < r; i++ {
		for j, v := range points.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return matrixErrorf(opValidatePoints, errors.Wrapf(ErrNaNInf, "at(%d,%d)", i, j))
			}
		}
	}

	return nil
}

// ValidateColumns ensures m is non-empty and has exactly n columns.
// Used to check that a partition (K×N) lines up with the point set.
func ValidateColumns(m *mat.Dense, n int) error {
	if err := ValidateNotEmpty(m); err != nil {
		return matrixErrorf(opValidateColumns, err)
	}
	if _, c := m.Dims(); c != n {
		return matrixErrorf(opValidateColumns, ErrDimensionMismatch)
	}

	return nil
}
