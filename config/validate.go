// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/clustering"
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/katalvlaran/mstcluster/storage"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks ranges and names. Every failure matches ErrInvalid.
// An empty model list passes; see BuildModels.
func (c *Config) Validate() error {
	p := c.Pipeline
	if !(p.MinPartition >= 0 && p.MinPartition <= 1) {
		return errors.Wrapf(ErrInvalid, "pipeline.min_partition must lie in [0,1], got %v", p.MinPartition)
	}
	if !(p.FuzzyNoiseCriterion >= 0 && p.FuzzyNoiseCriterion <= 1) {
		return errors.Wrapf(ErrInvalid, "pipeline.fuzzy_noise_criterion must lie in [0,1], got %v", p.FuzzyNoiseCriterion)
	}
	if p.Workers < 1 {
		return errors.Wrapf(ErrInvalid, "pipeline.workers must be >= 1, got %d", p.Workers)
	}

	if m := strings.ToLower(c.Forest.Method); m != forest.MethodKruskal && m != forest.MethodPrim {
		return errors.Wrapf(ErrInvalid, "forest.method %q", c.Forest.Method)
	}
	if _, err := forest.ParseDistanceMeasure(c.Forest.Distance); err != nil {
		return errors.Mark(errors.Wrap(err, "forest.distance"), ErrInvalid)
	}

	switch strings.ToLower(c.Store.Kind) {
	case storage.KindFile, storage.KindBolt, storage.KindBadger:
		if c.Store.Path == "" {
			return errors.Wrapf(ErrInvalid, "store.path is required for kind %q", c.Store.Kind)
		}
	case storage.KindMemory:
	default:
		return errors.Wrapf(ErrInvalid, "store.kind %q", c.Store.Kind)
	}

	if _, err := clustering.FromSpecs(c.Models); err != nil {
		return errors.Mark(errors.Wrap(err, "models"), ErrInvalid)
	}

	return nil
}

// BuildModels turns the model list into clustering models. An empty list is
// an error here, unlike in Validate, since commands that only build forests
// need no models.
func (c *Config) BuildModels() ([]clustering.Model, error) {
	if len(c.Models) == 0 {
		return nil, errors.WithHint(errors.Wrap(ErrInvalid, "no models"), "add at least one entry under models")
	}
	models, err := clustering.FromSpecs(c.Models)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "models"), ErrInvalid)
	}

	return models, nil
}

// DistanceMeasure returns the parsed forest.distance.
func (c *Config) DistanceMeasure() forest.DistanceMeasure {
	m, err := forest.ParseDistanceMeasure(c.Forest.Distance)
	if err != nil {
		return forest.Euclidean
	}
	return m
}
