// SPDX-License-Identifier: MIT

// Package mstcluster clusters point sets by iteratively refining a fuzzy
// partition over their minimum spanning tree.
//
// What is in the module?
//
//	forest/     - pairwise distances, Kruskal/Prim, the Forest type, tree cuts, Save/Load
//	clustering/ - the Model contract plus tree-cut and fuzzy c-means reference models
//	pipeline/   - the refinement driver: model cursor, noise pruning, labels, step saving
//	matrix/     - gonum helpers: validation, L2 row normalization, argmax, row stacking
//	storage/    - key/value sinks for steps: directory of files, bbolt, badger, memory
//	metrics/    - Prometheus collector for per-step reports
//	logging/    - zap logger construction
//	config/     - viper configuration for the command
//	cmd/mstcluster - fit, forest, labels and config commands
//
// Conventions shared by every package:
//
//   - point sets are N×D *mat.Dense, partitions are K×N (rows = clusters);
//   - label 0 is noise, labels 1..K follow partition rows;
//   - sentinel errors are prefixed with the package name and matched with errors.Is;
//   - option constructors panic on meaningless input, algorithms never do.
//
// Quick start:
//
//	p := pipeline.New([]clustering.Model{
//		clustering.TreeCut{Clusters: 3},
//		clustering.FuzzyCMeans{},
//	})
//	if err := p.Fit(points); err != nil {
//		return err
//	}
//	labels, err := p.Labels()
package mstcluster
