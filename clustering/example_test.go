// SPDX-License-Identifier: MIT
package clustering_test

import (
	"fmt"

	"github.com/katalvlaran/mstcluster/clustering"
	"github.com/katalvlaran/mstcluster/forest"
	"gonum.org/v1/gonum/mat"
)

// ExampleTreeCut_Transform splits five points on a line at the longest
// spanning tree edge.
func ExampleTreeCut_Transform() {
	points := mat.NewDense(5, 1, []float64{0, 1, 2, 9, 10})
	f, err := forest.NewBuilder().Build(points, 1, forest.Euclidean)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := clustering.TreeCut{Clusters: 2}.Transform(points, f, 1, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	k, _ := p.Dims()
	for row := 0; row < k; row++ {
		fmt.Println(p.RawRowView(row))
	}
	// Output:
	// [1 1 1 0 0]
	// [0 0 0 1 1]
}

// ExampleFromSpecs builds models from configuration entries.
func ExampleFromSpecs() {
	models, err := clustering.FromSpecs([]clustering.Spec{
		{Kind: clustering.KindTreeCut, Clusters: 4},
		{Kind: clustering.KindFuzzyCMeans},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, m := range models {
		fmt.Printf("%T\n", m)
	}
	// Output:
	// clustering.TreeCut
	// clustering.FuzzyCMeans
}
