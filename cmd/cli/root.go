// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"

	"contact-book/cmd/tui"
	"contact-book/internal/command"
	"contact-book/internal/config"
	"contact-book/internal/contacts"
	"contact-book/internal/logger"
	"contact-book/internal/shell"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// Flag values, applied on top of the loaded config.
var (
	configPath string
	pageSize   int
	plainMode  bool
	noColor    bool
	logLevel   string
)

// cfg is the effective configuration for this run, set in PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "cb",
	Short: "Contact Book",
	Long: `An interactive contact book for names, phone numbers and birthdays.

Run without a subcommand to open the shell, then type "help" for the list of
commands. Contacts live only for the duration of the session.

Settings are read from ~/.config/contact-book/config.yaml when present.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadEffectiveConfig(cmd)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.UI.Mode == config.ModePlain || !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
			return runPlainShell()
		}
		return runTUIShell()
	},
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the plain line-by-line prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlainShell()
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the full-screen interactive shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUIShell()
	},
}

func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/contact-book/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "contacts per block in \"show all\"")
	rootCmd.PersistentFlags().BoolVar(&plainMode, "plain", false, "use the plain prompt instead of the full-screen shell")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", logLevelCompletionFunc)

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(tuiCmd)
}

// resolveConfigPath returns the --config value or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultConfigPath()
}

// loadEffectiveConfig reads the config file and applies flags that were set
// explicitly on the command line.
func loadEffectiveConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return config.Config{}, err
	}
	c, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("page-size") {
		if pageSize < 1 {
			return config.Config{}, fmt.Errorf("--page-size must be at least 1, got %d", pageSize)
		}
		c.PageSize = pageSize
	}
	if flags.Changed("plain") && plainMode {
		c.UI.Mode = config.ModePlain
	}
	if flags.Changed("no-color") && noColor {
		disabled := false
		c.UI.Color = &disabled
	}
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if !c.ColorEnabled() {
		color.NoColor = true
	}
	return c, nil
}

// newDispatcher builds the session's address book. It lives only as long as
// the shell does.
func newDispatcher() *command.Dispatcher {
	return command.NewDispatcher(contacts.NewAddressBook(), command.WithPageSize(cfg.PageSize))
}

func runPlainShell() error {
	logger.InitLogger(logger.Options{Level: cfg.Log.Level, Stderr: false})
	logger.Info("starting plain shell", "page_size", cfg.PageSize)
	sh := shell.New(newDispatcher(), cfg.Prompt, os.Stdin, os.Stdout, cfg.ColorEnabled())
	return sh.Run()
}

func runTUIShell() error {
	logger.InitLogger(logger.Options{Level: cfg.Log.Level, Stderr: false})
	logger.Info("starting tui shell", "page_size", cfg.PageSize)
	return tui.RunTUI(newDispatcher(), cfg.Prompt)
}
