// SPDX-License-Identifier: MIT
// Package pipeline: step persistence.

package pipeline

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/katalvlaran/mstcluster/storage"
)

// ForestKey returns the key a step's forest is saved under.
func ForestKey(title string, step int) string {
	return fmt.Sprintf("%s-spanning-forest#%d", title, step)
}

// LabelsKey returns the key a step's label vector is saved under.
func LabelsKey(title string, step int) string {
	return fmt.Sprintf("%s-labels#%d", title, step)
}

// persistStep saves the forest through its own Save and the labels through s.
func persistStep(f forest.SpanningForest, s storage.Store, title string, step int, labels []int) error {
	if s == nil {
		return errors.WithHint(ErrNoStore, "configure the pipeline with WithStore")
	}

	key := ForestKey(title, step)
	if err := f.Save(key); err != nil {
		return errors.Wrapf(err, "pipeline: save forest %q", key)
	}
	key = LabelsKey(title, step)
	if err := storage.SaveLabels(s, key, labels); err != nil {
		return errors.Wrapf(err, "pipeline: save labels %q", key)
	}

	return nil
}
