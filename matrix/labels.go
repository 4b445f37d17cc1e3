// SPDX-License-Identifier: MIT
// Package: matrix
//
// Column-wise reductions used to turn a fuzzy partition into hard labels.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opStackRow      = "StackRow"
	opArgmaxColumns = "ArgmaxColumns"
)

// StackRow returns a (1+K)×N matrix whose row 0 is head and whose rows 1..K
// are the rows of body. body may be nil, in which case the result is 1×N.
//
// Errors:
//   - ErrNilMatrix if head is empty.
//   - ErrDimensionMismatch if len(head) != body column count.
//
// Complexity: O((K+1)·N).
func StackRow(head []float64, body *mat.Dense) (*mat.Dense, error) {
	if len(head) == 0 {
		return nil, matrixErrorf(opStackRow, ErrNilMatrix)
	}
	top := mat.NewDense(1, len(head), append([]float64(nil), head...))
	if body == nil || body.IsEmpty() {
		return top, nil
	}
	if _, c := body.Dims(); c != len(head) {
		return nil, matrixErrorf(opStackRow, ErrDimensionMismatch)
	}

	var out mat.Dense
	out.Stack(top, body)

	return &out, nil
}

// ArgmaxColumns returns, for every column j, the row index holding the largest
// value in that column. Ties resolve to the lowest row index; NaN never wins.
//
// Complexity: O(r*c).
func ArgmaxColumns(m *mat.Dense) ([]int, error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf(opArgmaxColumns, err)
	}
	r, c := m.Dims()
	out := make([]int, c)
	var i, j int
	for j = 0; j < c; j++ {
		best := 0
		bestVal := m.At(0, j)
		for i = 1; i < r; i++ {
			v := m.At(i, j)
			// strict > keeps the lowest index on ties
			if v > bestVal || (math.IsNaN(bestVal) && !math.IsNaN(v)) {
				best, bestVal = i, v
			}
		}
		out[j] = best
	}

	return out, nil
}

// NonZeroRows reports, per row, whether the row has at least one nonzero entry.
// A nil or empty matrix yields an empty mask.
func NonZeroRows(m *mat.Dense) []bool {
	if m == nil || m.IsEmpty() {
		return nil
	}
	r, _ := m.Dims()
	mask := make([]bool, r)
	for i := 0; i < r; i++ {
		for _, v := range m.RawRowView(i) {
			if v != 0 {
				mask[i] = true
				break
			}
		}
	}

	return mask
}
