// SPDX-License-Identifier: MIT
package clustering_test

import (
	"testing"

	"github.com/katalvlaran/mstcluster/clustering"
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// twoBlobs returns six 1-D points: three near 0, three near 10.
func twoBlobs() *mat.Dense {
	return mat.NewDense(6, 1, []float64{0, 0.5, 1, 10, 10.5, 11})
}

// buildForest builds the Euclidean MST over points.
func buildForest(t *testing.T, points *mat.Dense) *forest.Forest {
	t.Helper()
	f, err := forest.NewBuilder().Build(points, 2, forest.Euclidean)
	require.NoError(t, err)
	return f
}

// edgeOnlyForest hides the concrete type behind the interface.
type edgeOnlyForest struct{ edges []forest.Edge }

func (f edgeOnlyForest) IsSpanningTree() bool                 { return true }
func (f edgeOnlyForest) TreeEdges(int) ([]forest.Edge, error) { return f.edges, nil }
func (f edgeOnlyForest) Save(string) error                    { return nil }

// TestTreeCut_TwoBlobs splits the blobs at the long edge.
func TestTreeCut_TwoBlobs(t *testing.T) {
	points := twoBlobs()
	f := buildForest(t, points)

	p, err := clustering.TreeCut{Clusters: 2}.Transform(points, f, 1, nil)
	require.NoError(t, err)
	r, c := p.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 6, c)
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0}, p.RawRowView(0))
	assert.Equal(t, []float64{0, 0, 0, 1, 1, 1}, p.RawRowView(1))

	// same result through a foreign SpanningForest implementation
	p2, err := clustering.TreeCut{Clusters: 2}.Transform(points, edgeOnlyForest{edges: f.Edges()}, 1, nil)
	require.NoError(t, err)
	assert.True(t, mat.Equal(p, p2))
}

// TestTreeCut_Validation rejects bad parameters and mismatched forests.
func TestTreeCut_Validation(t *testing.T) {
	points := twoBlobs()
	f := buildForest(t, points)

	_, err := clustering.TreeCut{}.Transform(points, f, 1, nil)
	assert.ErrorIs(t, err, clustering.ErrBadParameter)

	_, err = clustering.TreeCut{Clusters: 2}.Transform(mat.NewDense(2, 1, []float64{0, 1}), f, 1, nil)
	assert.ErrorIs(t, err, clustering.ErrForestMismatch)

	// more clusters than edges: every point alone
	p, err := clustering.TreeCut{Clusters: 50}.Transform(points, f, 1, nil)
	require.NoError(t, err)
	r, _ := p.Dims()
	assert.Equal(t, 6, r)
}

// TestFuzzyCMeans_RefinesAndKeepsZeroRows checks column sums, range and that a
// zeroed row is not revived.
func TestFuzzyCMeans_RefinesAndKeepsZeroRows(t *testing.T) {
	points := twoBlobs()
	prev := mat.NewDense(3, 6, []float64{
		0.9, 0.8, 0.7, 0.2, 0.1, 0.1,
		0, 0, 0, 0, 0, 0,
		0.1, 0.2, 0.3, 0.8, 0.9, 0.9,
	})

	for _, workers := range []int{1, 4} {
		p, err := clustering.FuzzyCMeans{}.Transform(points, nil, workers, prev)
		require.NoError(t, err)

		assert.Equal(t, make([]float64, 6), p.RawRowView(1), "pruned row stays zero")
		for col := 0; col < 6; col++ {
			sum := p.At(0, col) + p.At(2, col)
			assert.InDelta(t, 1.0, sum, 1e-9)
			for row := 0; row < 3; row++ {
				v := p.At(row, col)
				assert.True(t, v >= 0 && v <= 1, "membership in [0,1]")
			}
		}
		assert.Greater(t, p.At(0, 0), 0.9)
		assert.Greater(t, p.At(2, 5), 0.9)
	}

	// input not mutated
	assert.Equal(t, 0.9, prev.At(0, 0))
}

// TestFuzzyCMeans_Validation covers missing partition, shape and parameters.
func TestFuzzyCMeans_Validation(t *testing.T) {
	points := twoBlobs()

	_, err := clustering.FuzzyCMeans{}.Transform(points, nil, 1, nil)
	assert.ErrorIs(t, err, clustering.ErrNoPartition)

	_, err = clustering.FuzzyCMeans{}.Transform(points, nil, 1, mat.NewDense(2, 3, nil))
	assert.Error(t, err)

	_, err = clustering.FuzzyCMeans{Fuzziness: 0.5}.Transform(points, nil, 1, mat.NewDense(2, 6, nil))
	assert.ErrorIs(t, err, clustering.ErrBadParameter)

	// all-zero partition passes through untouched
	zero := mat.NewDense(2, 6, nil)
	p, err := clustering.FuzzyCMeans{}.Transform(points, nil, 1, zero)
	require.NoError(t, err)
	assert.Zero(t, floats.Sum(p.RawMatrix().Data))
}

// TestFromSpecs builds a model sequence and rejects unknown kinds.
func TestFromSpecs(t *testing.T) {
	models, err := clustering.FromSpecs([]clustering.Spec{
		{Kind: "tree-cut", Clusters: 3},
		{Kind: "Fuzzy-CMeans", Fuzziness: 1.5},
	})
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, clustering.TreeCut{Clusters: 3}, models[0])
	assert.Equal(t, clustering.FuzzyCMeans{Fuzziness: 1.5}, models[1])

	_, err = clustering.FromSpecs([]clustering.Spec{{Kind: "dbscan"}})
	assert.ErrorIs(t, err, clustering.ErrUnknownModel)

	_, err = clustering.FromSpec(clustering.Spec{Kind: "tree-cut"})
	assert.ErrorIs(t, err, clustering.ErrBadParameter)
}

// TestModelFunc adapts a closure.
func TestModelFunc(t *testing.T) {
	called := false
	var m clustering.Model = clustering.ModelFunc(func(points *mat.Dense, _ forest.SpanningForest, workers int, _ *mat.Dense) (*mat.Dense, error) {
		called = true
		assert.Equal(t, 3, workers)
		_, n := points.Dims()
		return mat.NewDense(1, n, nil), nil
	})
	_, err := m.Transform(mat.NewDense(2, 2, nil), nil, 3, nil)
	require.NoError(t, err)
	assert.True(t, called)
}
