// SPDX-License-Identifier: MIT

// Command mstcluster clusters CSV point sets with a refinement pipeline over
// their minimum spanning tree.
//
//	mstcluster fit --config mstcluster.yaml --points points.csv --plot labels.png
//	mstcluster forest --points points.csv --key blobs
//	mstcluster labels --key step-labels#0
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintln(os.Stderr, "hint:", hints)
		}
		os.Exit(1)
	}
}
