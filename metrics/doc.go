// SPDX-License-Identifier: MIT

// Package metrics exports refinement progress as Prometheus metrics.
//
// A Collector implements pipeline.Observer; pass it with
// pipeline.WithObserver and register it on any prometheus.Registerer:
//
//	c := metrics.NewCollector(prometheus.DefaultRegisterer)
//	p := pipeline.New(models, pipeline.WithObserver(c))
//
// Exported series:
//
//	mstcluster_steps_total            – refinement steps completed
//	mstcluster_pruned_clusters_total  – clusters dissolved into noise
//	mstcluster_noise_points           – noise points after the latest step
//	mstcluster_surviving_clusters     – non-empty clusters after the latest step
//	mstcluster_step_duration_seconds  – model transform + pruning latency
package metrics
