// SPDX-License-Identifier: MIT
// Package clustering: declarative model construction.

package clustering

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Model kinds accepted by FromSpec.
const (
	KindTreeCut     = "tree-cut"
	KindFuzzyCMeans = "fuzzy-cmeans"
)

// Spec describes one model in a configuration file.
type Spec struct {
	Kind       string  `mapstructure:"kind" json:"kind"`
	Clusters   int     `mapstructure:"clusters" json:"clusters,omitempty"`
	Fuzziness  float64 `mapstructure:"fuzziness" json:"fuzziness,omitempty"`
	Iterations int     `mapstructure:"iterations" json:"iterations,omitempty"`
	Tolerance  float64 `mapstructure:"tolerance" json:"tolerance,omitempty"`
}

// FromSpec builds the Model described by s.
func FromSpec(s Spec) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case KindTreeCut:
		if s.Clusters < 1 {
			return nil, errors.Wrapf(ErrBadParameter, "tree-cut clusters=%d", s.Clusters)
		}
		return TreeCut{Clusters: s.Clusters}, nil
	case KindFuzzyCMeans:
		m := FuzzyCMeans{Fuzziness: s.Fuzziness, Iterations: s.Iterations, Tolerance: s.Tolerance}
		if _, err := m.withDefaults(); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, errors.WithHintf(errors.Wrapf(ErrUnknownModel, "%q", s.Kind),
			"use %q or %q", KindTreeCut, KindFuzzyCMeans)
	}
}

// FromSpecs builds models in order, stopping at the first invalid spec.
func FromSpecs(specs []Spec) ([]Model, error) {
	models := make([]Model, 0, len(specs))
	for i, s := range specs {
		m, err := FromSpec(s)
		if err != nil {
			return nil, errors.Wrapf(err, "model %d", i)
		}
		models = append(models, m)
	}

	return models, nil
}
