// SPDX-License-Identifier: MIT

// Package forest builds and represents minimum spanning forests over point sets.
//
// What & Why
//
//   - The clustering pipeline works on a point set pre-organized into a minimum
//     spanning tree: the tree's heavy edges separate clusters, its light edges
//     bind them. This package supplies that structure.
//
// Building blocks
//
//   - Edge      - an undirected, float-weighted edge between point indices.
//   - Forest    - an acyclic edge set over N points with component bookkeeping,
//     IsSpanningTree / TreeEdges queries, Cut and Save/Load.
//   - Kruskal   - global stable sort + union-find, O(E log E).
//   - Prim      - min-heap growth from a root, O(E log V).
//   - Builder   - computes all pairwise distances (parallel, bounded by the
//     worker count) and runs Kruskal or Prim to produce a Forest.
//
// Distance measures
//
//   - Euclidean, Quadratic (squared Euclidean), Manhattan, Cosine.
//
// Error Conditions
//
//   - ErrDisconnected   : Kruskal/Prim could not connect all vertices.
//   - ErrEdgeRange      : an edge endpoint is outside [0, N).
//   - ErrCycle          : edges passed to New contain a cycle.
//   - ErrComponentRange : TreeEdges called with an unknown component.
//   - ErrNoStore        : Save called on a forest with no attached store.
//   - ErrUnknownMeasure : unsupported DistanceMeasure.
//
// Determinism
//
//   - Pairwise edges are generated in (i<j) lexicographic order and sorted
//     stably, so equal weights always break ties the same way regardless of
//     the worker count.
package forest
