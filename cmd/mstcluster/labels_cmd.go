// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mstcluster/storage"
	"github.com/spf13/cobra"
)

func newLabelsCmd(e *env) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Print a label vector saved by fit",
		Long: `Reads a label vector saved by "fit" with pipeline.save_steps enabled.
Keys follow "{step_title}-labels#{step}".

Example:
  mstcluster labels -c mstcluster.yaml --key blobs-labels#1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLabels(cmd.OutOrStdout(), e, key)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "store key (required)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func runLabels(out io.Writer, e *env, key string) (err error) {
	store, err := e.openStore()
	if err != nil {
		return err
	}
	defer closeStore(store, &err)

	labels, err := storage.LoadLabels(store, key)
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

	return nil
}
