// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mstcluster/matrix"
	"gonum.org/v1/gonum/mat"
)

// ExampleArgmaxColumns turns a noise vector and a 2×4 partition into labels.
func ExampleArgmaxColumns() {
	noise := []float64{1, 0, 0, 0}
	partition := mat.NewDense(2, 4, []float64{
		0, 0.7, 0.2, 0,
		0.1, 0.3, 0.8, 0,
	})

	stacked, err := matrix.StackRow(noise, partition)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	labels, err := matrix.ArgmaxColumns(stacked)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(labels)
	// Output:
	// [0 1 2 0]
}
