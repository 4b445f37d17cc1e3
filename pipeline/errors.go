// SPDX-License-Identifier: MIT
// Package pipeline: sentinel errors.

package pipeline

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidForest indicates that a freshly built forest is not a single
	// spanning tree over all points. Fit aborts; nothing is retried.
	ErrInvalidForest = errors.New("pipeline: forest is not a spanning tree")

	// ErrNoData indicates that Fit was called without points and none were
	// accepted by an earlier call.
	ErrNoData = errors.New("pipeline: no point data")

	// ErrPartitionShape indicates a partition whose column count differs from
	// the number of points.
	ErrPartitionShape = errors.New("pipeline: partition does not match points")

	// ErrNotFitted indicates that labels were requested before any step ran.
	ErrNotFitted = errors.New("pipeline: no partition yet")

	// ErrNoStore indicates that step saving was requested without a label store.
	ErrNoStore = errors.New("pipeline: step saving needs a store")
)
