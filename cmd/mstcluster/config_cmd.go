// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}
	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration after defaults, file and environment are merged",
		Long: `Prints the merged configuration.

Examples:
  mstcluster config show -c mstcluster.yaml
  mstcluster config show -c mstcluster.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.OutOrStdout(), e, format)
		},
	}
	show.Flags().StringVar(&format, "format", "yaml", "output format: yaml, json, toml")
	cmd.AddCommand(show)

	return cmd
}

func runConfigShow(out io.Writer, e *env, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(e.cfg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(e.cfg)
	case "toml":
		data, err = toml.Marshal(e.cfg)
	default:
		return errors.Newf("unsupported format %q (supported: yaml, json, toml)", format)
	}
	if err != nil {
		return errors.Wrapf(err, "marshal config to %s", format)
	}
	if format != "json" {
		if _, err = fmt.Fprintln(out, "# mstcluster configuration"); err != nil {
			return err
		}
	}
	_, err = out.Write(data)

	return err
}
