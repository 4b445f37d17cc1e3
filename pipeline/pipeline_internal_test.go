// SPDX-License-Identifier: MIT
package pipeline

import (
	"testing"

	"github.com/katalvlaran/mstcluster/clustering"
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPruneNoise_DissolvesWeakRows(t *testing.T) {
	p := mat.NewDense(2, 4, []float64{
		0.9, 0, 0, 0,
		0.1, 1, 1, 1,
	})
	noise := make([]float64, 4)

	pruned := pruneNoise(p, noise, 0.5, 0.5)

	assert.Equal(t, []int{0}, pruned)
	assert.Equal(t, []float64{1, 0, 0, 0}, noise)
	assert.Equal(t, []float64{0, 0, 0, 0}, p.RawRowView(0))
	assert.Equal(t, []float64{0.1, 1, 1, 1}, p.RawRowView(1))
}

func TestPruneNoise_Idempotent(t *testing.T) {
	p := mat.NewDense(3, 5, []float64{
		0.2, 0.3, 0, 0, 0,
		0.8, 0.7, 0.6, 0, 0,
		0, 0, 0.4, 1, 1,
	})
	noise := make([]float64, 5)

	first := pruneNoise(p, noise, 0.5, 0.2)
	require.Equal(t, []int{0}, first)
	snapshot := mat.DenseCopyOf(p)
	noiseSnapshot := append([]float64(nil), noise...)

	second := pruneNoise(p, noise, 0.5, 0.2)
	assert.Empty(t, second, "already-zero rows are not reported again")
	assert.True(t, mat.Equal(snapshot, p))
	assert.Equal(t, noiseSnapshot, noise)
}

func TestPruneNoise_BoundaryIsInclusive(t *testing.T) {
	// one strong member out of four is exactly the criterion
	p := mat.NewDense(1, 4, []float64{0.6, 0.2, 0, 0})
	noise := make([]float64, 4)

	pruned := pruneNoise(p, noise, 0.5, 0.25)

	assert.Equal(t, []int{0}, pruned)
	assert.Equal(t, []float64{1, 1, 0, 0}, noise)
}

func TestPruneNoise_MembershipAtThresholdIsWeak(t *testing.T) {
	p := mat.NewDense(1, 2, []float64{0.5, 0.5})
	noise := make([]float64, 2)

	pruned := pruneNoise(p, noise, 0.5, 0)

	assert.Equal(t, []int{0}, pruned)
}

func TestSequencer(t *testing.T) {
	noop := clustering.ModelFunc(func(_ *mat.Dense, _ forest.SpanningForest, _ int, prev *mat.Dense) (*mat.Dense, error) {
		return prev, nil
	})
	s := newSequencer([]clustering.Model{noop, noop})
	require.Equal(t, 2, s.Len())

	_, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, s.Remaining())
	_, ok = s.Next()
	assert.True(t, ok)

	m, ok := s.Next()
	assert.False(t, ok)
	assert.Nil(t, m)
	assert.Equal(t, 2, s.Consumed())
	assert.Equal(t, 0, s.Remaining())
}

func TestForestState_String(t *testing.T) {
	assert.Equal(t, "none", ForestNone.String())
	assert.Equal(t, "built", ForestBuilt.String())
	assert.Equal(t, "supplied", ForestSupplied.String())
}
