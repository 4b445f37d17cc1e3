// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/katalvlaran/mstcluster/metrics"
	"github.com/katalvlaran/mstcluster/pipeline"
	"github.com/katalvlaran/mstcluster/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type fitFlags struct {
	points  string
	plot    string
	metrics string
}

func newFitCmd(e *env) *cobra.Command {
	var fl fitFlags
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Run the configured models and print one label per point",
		Long: `Reads points from a CSV file (one point per line), builds their minimum
spanning tree and runs every configured model in order. Prints "point,label"
lines; label 0 is noise, 1..K are clusters.

Examples:
  mstcluster fit -c mstcluster.yaml --points blobs.csv
  mstcluster fit -c mstcluster.yaml --points blobs.csv --plot blobs.png
  mstcluster fit -c mstcluster.yaml --points blobs.csv --metrics fit.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFit(cmd.OutOrStdout(), e, fl)
		},
	}
	cmd.Flags().StringVarP(&fl.points, "points", "p", "", "CSV file with one point per line (required)")
	cmd.Flags().StringVar(&fl.plot, "plot", "", "write a PNG/SVG/PDF scatter plot of the first two dimensions")
	cmd.Flags().StringVar(&fl.metrics, "metrics", "", "write Prometheus metrics in text format to this file")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func runFit(out io.Writer, e *env, fl fitFlags) (err error) {
	cfg := e.cfg
	models, err := cfg.BuildModels()
	if err != nil {
		return err
	}
	points, err := readPointsFile(fl.points)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	builderOpts := []forest.BuilderOption{
		forest.WithMethod(cfg.Forest.Method),
		forest.WithLogger(e.log),
	}
	opts := []pipeline.Option{
		pipeline.WithMinPartition(cfg.Pipeline.MinPartition),
		pipeline.WithFuzzyNoiseCriterion(cfg.Pipeline.FuzzyNoiseCriterion),
		pipeline.WithWorkers(cfg.Pipeline.Workers),
		pipeline.WithDistance(cfg.DistanceMeasure()),
		pipeline.WithLogger(e.log),
		pipeline.WithObserver(metrics.NewCollector(reg)),
	}
	fitOpts := []pipeline.FitOption{}
	if cfg.Pipeline.Steps >= 0 {
		fitOpts = append(fitOpts, pipeline.WithSteps(cfg.Pipeline.Steps))
	}
	if cfg.Pipeline.Normalize {
		fitOpts = append(fitOpts, pipeline.WithNormalization())
	}
	if cfg.Pipeline.SaveSteps {
		var store storage.Store
		if store, err = e.openStore(); err != nil {
			return err
		}
		defer closeStore(store, &err)
		builderOpts = append(builderOpts, forest.WithStore(store))
		opts = append(opts, pipeline.WithStore(store))
		fitOpts = append(fitOpts, pipeline.WithSaveSteps(cfg.Pipeline.StepTitle))
	}
	builder := forest.NewBuilder(builderOpts...)
	opts = append(opts, pipeline.WithForestBuilder(pipeline.FromForestBuilder(builder)))

	p := pipeline.New(models, opts...)
	if err = p.Fit(points, fitOpts...); err != nil {
		return err
	}
	labels, err := p.Labels()
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(out, "point,label"); err != nil {
		return err
	}
	for i, l := range labels {
		if _, err = fmt.Fprintf(out, "%d,%d\n", i, l); err != nil {
			return err
		}
	}
	e.log.Infow("labels written",
		"points", len(labels), "clusters", p.ClustersCount(),
		"non_empty", p.NonEmptyClustersCount(), "noise_points", p.NoiseCount())

	if fl.plot != "" {
		if err = plotLabels(fl.plot, p.Points(), labels); err != nil {
			return err
		}
		e.log.Infow("plot written", "path", fl.plot)
	}
	if fl.metrics != "" {
		if err = prometheus.WriteToTextfile(fl.metrics, reg); err != nil {
			return errors.Wrapf(err, "write metrics %s", fl.metrics)
		}
	}

	return nil
}
