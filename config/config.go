// SPDX-License-Identifier: MIT

// Package config loads mstcluster command settings with viper.
//
// Sources, lowest precedence first: built-in defaults, the config file
// (YAML, TOML or JSON by extension), MSTCLUSTER_* environment variables
// (nested keys joined by "_", e.g. MSTCLUSTER_PIPELINE_WORKERS).
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/clustering"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix.
const EnvPrefix = "MSTCLUSTER"

// Config is the full command configuration.
type Config struct {
	Pipeline PipelineConfig    `mapstructure:"pipeline"`
	Forest   ForestConfig      `mapstructure:"forest"`
	Models   []clustering.Spec `mapstructure:"models"`
	Store    StoreConfig       `mapstructure:"store"`
	Log      LogConfig         `mapstructure:"log"`
}

// PipelineConfig mirrors the pipeline.New and Fit options.
type PipelineConfig struct {
	MinPartition        float64 `mapstructure:"min_partition"`
	FuzzyNoiseCriterion float64 `mapstructure:"fuzzy_noise_criterion"`
	Workers             int     `mapstructure:"workers"`
	Steps               int     `mapstructure:"steps"` // negative: one per model
	Normalize           bool    `mapstructure:"normalize"`
	SaveSteps           bool    `mapstructure:"save_steps"`
	StepTitle           string  `mapstructure:"step_title"`
}

// ForestConfig selects how the spanning forest is built.
type ForestConfig struct {
	Method   string `mapstructure:"method"`
	Distance string `mapstructure:"distance"`
}

// StoreConfig selects where steps and forests are persisted.
type StoreConfig struct {
	Kind string `mapstructure:"kind"`
	Path string `mapstructure:"path"`
}

// LogConfig selects the log format and level.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// Load reads path (if non-empty) on top of the defaults and environment,
// then validates the result.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper decodes and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	cfg.Forest.Method = strings.ToLower(strings.TrimSpace(cfg.Forest.Method))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
