// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Inspect the effective configuration.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/searchbench/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Args:  noArgs,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as TOML",
			Args:  noArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig(opts.configPath)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), cfg.String())
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file locations",
			Args:  noArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return showConfigPaths(cmd, opts.configPath)
			},
		},
	)

	return cmd
}

// showConfigPaths lists the config files searched, in precedence order.
func showConfigPaths(cmd *cobra.Command, explicit string) error {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	} else {
		for _, pathFn := range []func() (string, error){config.ConfigPathTOML, config.ConfigPathJSON} {
			path, err := pathFn()
			if err != nil {
				return &ConfigError{Err: err}
			}
			paths = append(paths, path)
		}
	}

	out := cmd.OutOrStdout()
	for _, path := range paths {
		status := DimStyle.Render("(not found)")
		if _, err := os.Stat(path); err == nil {
			status = ValueStyle.Render("(found)")
		}
		fmt.Fprintf(out, "%s %s\n", path, status)
	}
	return nil
}
