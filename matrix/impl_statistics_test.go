// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mstcluster/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TestNormalizeRowsL2_UnitRows verifies unit norms, zero-row passthrough and
// that the input is not mutated.
func TestNormalizeRowsL2_UnitRows(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		3, 4,
		0, 0,
		-2, 0,
	})

	Y, norms, err := matrix.NormalizeRowsL2(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 2}, norms)

	assert.InDelta(t, 0.6, Y.At(0, 0), 1e-12)
	assert.InDelta(t, 0.8, Y.At(0, 1), 1e-12)
	assert.Equal(t, []float64{0, 0}, Y.RawRowView(1), "zero rows stay zero")
	assert.InDelta(t, 1.0, floats.Norm(Y.RawRowView(2), 2), 1e-12)

	// original untouched
	assert.Equal(t, 3.0, X.At(0, 0))
}

// TestNormalizeRowsL2_Empty rejects nil input.
func TestNormalizeRowsL2_Empty(t *testing.T) {
	_, _, err := matrix.NormalizeRowsL2(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
