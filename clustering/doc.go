// SPDX-License-Identifier: MIT

// Package clustering defines the clustering-transform contract consumed by the
// pipeline and ships two reference models.
//
// A Model maps (points, forest, workers, previous partition) to a new K×N
// partition of fuzzy memberships in [0,1]: rows are clusters, columns points.
//
//   - TreeCut      - hard partition obtained by cutting the heaviest edges of
//     the spanning forest. Ignores the previous partition; a natural first step.
//   - FuzzyCMeans  - refines a previous partition with fuzzy c-means updates.
//     Rows that arrive all-zero (pruned clusters) stay all-zero.
//
// FromSpec builds either model from a declarative Spec, which is how the CLI
// wires configuration files to model sequences.
package clustering
