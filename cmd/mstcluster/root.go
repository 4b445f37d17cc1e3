// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/mstcluster/config"
	"github.com/katalvlaran/mstcluster/logging"
	"github.com/katalvlaran/mstcluster/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env carries what every subcommand needs after flag parsing.
type env struct {
	configPath string
	cfg        *config.Config
	log        *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "mstcluster",
		Short: "Fuzzy clustering over minimum spanning trees",
		Long: `mstcluster runs an ordered list of clustering models over a point set
organized into a minimum spanning tree. After every step, clusters with too
few strong members are dissolved into noise (label 0).

Configuration sources (in order of precedence):
1. Environment variables (MSTCLUSTER_* prefix, e.g. MSTCLUSTER_PIPELINE_WORKERS)
2. The file given with --config (YAML, TOML or JSON)
3. Default values`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(e.configPath)
			if err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.JSON, cfg.Log.Level)
			if err != nil {
				return err
			}
			e.cfg, e.log = cfg, log
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&e.configPath, "config", "c", "", "configuration file")

	root.AddCommand(newFitCmd(e), newForestCmd(e), newLabelsCmd(e), newConfigCmd(e))

	return root
}

// openStore opens the configured store.
func (e *env) openStore() (storage.Store, error) {
	s, err := storage.Open(e.cfg.Store.Kind, e.cfg.Store.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	e.log.Debugw("store opened", "kind", e.cfg.Store.Kind, "path", e.cfg.Store.Path)

	return s, nil
}

// closeStore closes s, keeping the first error.
func closeStore(s storage.Store, err *error) {
	if cerr := s.Close(); cerr != nil && *err == nil {
		*err = errors.Wrap(cerr, "close store")
	}
}
