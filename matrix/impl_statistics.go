// SPDX-License-Identifier: MIT
// Package: matrix
//
// Row statistics used during preprocessing.

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const opNormalizeRowsL2 = "NormalizeRowsL2"

// NormalizeRowsL2 returns a copy of X whose rows have unit Euclidean norm,
// together with the original row norms.
//
// Implementation:
//   - Stage 1: validate X (non-nil, non-empty).
//   - Stage 2: copy X so the caller's matrix is never mutated.
//   - Stage 3: per row, compute ‖x_i‖₂ and scale by 1/‖x_i‖₂.
//
// Behavior highlights:
//   - Rows with zero norm are left unchanged (scale 1), so an all-zero row stays
//     all-zero. No epsilon is applied: only exact zeros are treated as degenerate.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (wrapped with the operation tag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the copy + O(r) for norms.
func NormalizeRowsL2(X *mat.Dense) (*mat.Dense, []float64, error) {
	// Stage 1 (Validate).
	if err := ValidateNotEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}

	// Stage 2 (Copy).
	Y := mat.DenseCopyOf(X)
	r, _ := Y.Dims()
	norms := make([]float64, r)

	// Stage 3 (Scale rows in place on the copy).
	for i := 0; i < r; i++ {
		row := Y.RawRowView(i)
		norms[i] = floats.Norm(row, 2)
		if norms[i] > 0 {
			floats.Scale(1/norms[i], row)
		}
	}

	return Y, norms, nil
}
