// SPDX-License-Identifier: MIT

// Package matrix offers the small set of dense-matrix helpers the clustering
// pipeline relies on, built on top of gonum's *mat.Dense.
//
// Orientation is fixed across the module:
//
//   - point sets are N×D (one row per point),
//   - partitions are K×N (one row per cluster, one column per point).
//
// The helpers provided here are:
//
//   - NormalizeRowsL2 - unit-norm rows, zero rows left untouched.
//   - StackRow        - prepend a single row (the noise vector) above a matrix.
//   - ArgmaxColumns   - per-column index of the maximal row, ties to the lowest index.
//   - NonZeroRows     - per-row "has any nonzero entry" mask.
//   - Validate*       - nil/shape/finite checks returning package sentinels.
//
// All functions return sentinel errors (see errors.go) instead of panicking on
// user input; gonum itself panics on shape violations, so every public helper
// validates shapes before touching gonum.
package matrix
