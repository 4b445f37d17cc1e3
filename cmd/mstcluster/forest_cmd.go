// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mstcluster/forest"
	"github.com/spf13/cobra"
)

func newForestCmd(e *env) *cobra.Command {
	var points, key string
	cmd := &cobra.Command{
		Use:   "forest",
		Short: "Build the minimum spanning tree of a point set and save it",
		Long: `Builds the minimum spanning tree with the configured method, distance and
worker count, saves it under --key in the configured store and prints a summary.

Example:
  mstcluster forest -c mstcluster.yaml --points blobs.csv --key blobs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForest(cmd.OutOrStdout(), e, points, key)
		},
	}
	cmd.Flags().StringVarP(&points, "points", "p", "", "CSV file with one point per line (required)")
	cmd.Flags().StringVarP(&key, "key", "k", "spanning-forest", "store key")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func runForest(out io.Writer, e *env, pointsPath, key string) (err error) {
	points, err := readPointsFile(pointsPath)
	if err != nil {
		return err
	}
	store, err := e.openStore()
	if err != nil {
		return err
	}
	defer closeStore(store, &err)

	b := forest.NewBuilder(
		forest.WithMethod(e.cfg.Forest.Method),
		forest.WithStore(store),
		forest.WithLogger(e.log),
	)
	f, err := b.Build(points, e.cfg.Pipeline.Workers, e.cfg.DistanceMeasure())
	if err != nil {
		return err
	}
	if err = f.Save(key); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "points: %d\nedges: %d\ncomponents: %d\nweight: %g\nkey: %s\n",
		f.Len(), len(f.Edges()), f.ComponentsCount(), f.TotalWeight(), key)

	return err
}
