// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"contact-book/internal/config"
	"contact-book/internal/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage contact-book configuration",
	Long: `Provides subcommands to inspect and change the contact-book settings file.
The file only holds presentation settings; contacts are never written to disk.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		logger.InitLogger(logger.Options{Level: cfg.Log.Level, Stderr: true})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration, including defaults and flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		dimColor.Fprintln(cmd.OutOrStdout(), "# effective configuration")
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configSetPageSizeCmd = &cobra.Command{
	Use:     "set-page-size <n>",
	Short:   "Set how many contacts \"show all\" prints per block",
	Example: "  cb config set-page-size 10",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("page size must be a positive integer, got %q", args[0])
		}
		return updateConfig(cmd, func(c *config.Config) {
			c.PageSize = n
		}, fmt.Sprintf("Page size set to: %d", n))
	},
}

var configSetModeCmd = &cobra.Command{
	Use:               "set-mode <tui|plain>",
	Short:             "Choose the shell opened when cb runs without a subcommand",
	Example:           "  cb config set-mode plain",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: modeCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := strings.ToLower(args[0])
		if mode != config.ModeTUI && mode != config.ModePlain {
			return fmt.Errorf("mode must be either %q or %q", config.ModeTUI, config.ModePlain)
		}
		return updateConfig(cmd, func(c *config.Config) {
			c.UI.Mode = mode
		}, "Shell mode set to: "+identifierColor.Sprint(mode))
	},
}

// updateConfig loads the file without flag overrides, applies change and
// writes it back, so one-off flags never leak into the saved file.
func updateConfig(cmd *cobra.Command, change func(*config.Config), done string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	c, err := config.Load(path)
	if err != nil {
		logger.Errorf("Error loading configuration: %v", err)
		return err
	}
	change(&c)
	if err := config.Save(path, c); err != nil {
		logger.Errorf("Error saving configuration: %v", err)
		return err
	}
	logger.Info("configuration updated", "path", path)
	successColor.Fprintln(cmd.OutOrStdout(), done)
	return nil
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetPageSizeCmd)
	configCmd.AddCommand(configSetModeCmd)

	rootCmd.AddCommand(configCmd)
}
