// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/mstcluster/forest"
	"github.com/katalvlaran/mstcluster/pipeline"
	"github.com/katalvlaran/mstcluster/storage"
	"github.com/spf13/viper"
)

// SetDefaults registers a default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.min_partition", pipeline.DefaultMinPartition)
	v.SetDefault("pipeline.fuzzy_noise_criterion", pipeline.DefaultFuzzyNoiseCriterion)
	v.SetDefault("pipeline.workers", 1)
	v.SetDefault("pipeline.steps", -1)
	v.SetDefault("pipeline.normalize", false)
	v.SetDefault("pipeline.save_steps", false)
	v.SetDefault("pipeline.step_title", pipeline.DefaultStepTitle)

	v.SetDefault("forest.method", forest.MethodKruskal)
	v.SetDefault("forest.distance", forest.Euclidean.String())

	v.SetDefault("store.kind", storage.KindFile)
	v.SetDefault("store.path", "mstcluster-steps")

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}
