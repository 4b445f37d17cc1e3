// SPDX-License-Identifier: MIT
// Package pipeline: cluster survival filter.

package pipeline

import "gonum.org/v1/gonum/mat"

// pruneNoise dissolves statistically insignificant clusters into noise.
//
// For each row k of the K×N partition:
//
//	strong_k = #{n : partition[k,n] > minPartition}
//	if strong_k / N ≤ criterion:
//	    noise[n] = 1 for every n with partition[k,n] > 0
//	    partition[k,n] = 0 for those n
//
// partition and noise are modified in place; noise is only ever set, never
// cleared. It returns the indices of rows that were zeroed by this call
// (rows already all-zero are not reported).
//
// Complexity: O(K·N).
func pruneNoise(partition *mat.Dense, noise []float64, minPartition, criterion float64) []int {
	k, n := partition.Dims()
	var pruned []int
	for row := 0; row < k; row++ {
		values := partition.RawRowView(row)

		strong := 0
		for _, v := range values {
			if v > minPartition {
				strong++
			}
		}
		if float64(strong)/float64(n) > criterion {
			continue
		}

		zeroed := false
		for col, v := range values {
			if v > 0 {
				noise[col] = 1
				values[col] = 0
				zeroed = true
			}
		}
		if zeroed {
			pruned = append(pruned, row)
		}
	}

	return pruned
}
