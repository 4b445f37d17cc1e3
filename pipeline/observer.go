// SPDX-License-Identifier: MIT
// Package pipeline: per-step reporting hook.

package pipeline

import "time"

// StepReport summarizes one completed refinement step.
type StepReport struct {
	RunID       string        // id of the Fit call
	Step        int           // 0-based index within the call
	Clusters    int           // partition rows K
	Surviving   int           // rows with at least one nonzero entry after pruning
	Pruned      int           // rows dissolved into noise by this step
	NoisePoints int           // points flagged as noise so far in this call
	Duration    time.Duration // model transform + pruning
}

// Observer receives a StepReport after every step, before persistence.
type Observer interface {
	ObserveStep(StepReport)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(StepReport)

// ObserveStep calls fn(r).
func (fn ObserverFunc) ObserveStep(r StepReport) { fn(r) }
