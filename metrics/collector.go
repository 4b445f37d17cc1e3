// SPDX-License-Identifier: MIT
// Package metrics: the pipeline.Observer backed by Prometheus.

package metrics

import (
	"github.com/katalvlaran/mstcluster/pipeline"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every series.
const Namespace = "mstcluster"

// Collector turns step reports into Prometheus series.
type Collector struct {
	steps     prometheus.Counter
	pruned    prometheus.Counter
	noise     prometheus.Gauge
	surviving prometheus.Gauge
	duration  prometheus.Histogram
}

var _ pipeline.Observer = (*Collector)(nil)

// NewCollector creates the series and registers them on reg.
// A nil reg leaves them unregistered. Panics if registration fails,
// like prometheus.MustRegister.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "steps_total",
			Help:      "Refinement steps completed",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pruned_clusters_total",
			Help:      "Clusters dissolved into noise",
		}),
		noise: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "noise_points",
			Help:      "Points flagged as noise after the latest step",
		}),
		surviving: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "surviving_clusters",
			Help:      "Non-empty clusters after the latest step",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "step_duration_seconds",
			Help:      "Model transform and pruning latency",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(c.steps, c.pruned, c.noise, c.surviving, c.duration)
	}

	return c
}

// ObserveStep implements pipeline.Observer.
func (c *Collector) ObserveStep(r pipeline.StepReport) {
	c.steps.Inc()
	c.pruned.Add(float64(r.Pruned))
	c.noise.Set(float64(r.NoisePoints))
	c.surviving.Set(float64(r.Surviving))
	c.duration.Observe(r.Duration.Seconds())
}
