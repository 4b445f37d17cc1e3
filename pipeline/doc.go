// SPDX-License-Identifier: MIT

// Package pipeline drives iterative partition refinement over a point set
// organized into a minimum spanning forest.
//
// A Pipeline owns:
//
//   - an ordered list of clustering.Model values and a cursor into it,
//   - the spanning forest (built once and cached, or supplied by the caller),
//   - the current K×N partition (rows = clusters, columns = points),
//   - the noise vector (length N, entries in {0,1}).
//
// Each call to Fit:
//
//  1. accepts (a copy of) the points, optionally L2-normalizing rows;
//  2. acquires the forest: supplied → adopted; none cached → built and
//     validated (one tree, N−1 edges); cached → reused;
//  3. resets the noise vector to all zeros;
//  4. runs up to the requested number of steps, each pulling the next unused
//     model, transforming the previous partition, pruning insignificant
//     clusters into noise, and optionally persisting the step.
//
// Reset rules across calls: the forest and the model cursor persist (a model
// consumed by one call is never run again), while noise accounting restarts.
//
// Labels derives a hard label per point by stacking the noise vector above the
// partition and taking the per-column argmax: 0 is noise, 1..K are clusters.
//
// A Pipeline is not safe for concurrent use.
package pipeline
