// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration: reading and writing the
// YAML settings file and filling in defaults. Contacts are never stored here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ModeTUI   = "tui"
	ModePlain = "plain"

	DefaultPageSize = 5
	DefaultPrompt   = "Waiting your command:>>> "
)

// UIConfig selects how the interactive shell is presented.
type UIConfig struct {
	// Mode is "tui" (full-screen shell) or "plain" (line-by-line prompt)
	Mode string `yaml:"mode,omitempty"`

	// Color enables colored output in the plain shell
	Color *bool `yaml:"color,omitempty"`
}

// LogConfig controls the application log.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level,omitempty"`
}

// Config represents the top-level application configuration
type Config struct {
	// PageSize is the number of contacts per block in "show all"
	PageSize int `yaml:"page_size,omitempty"`

	// Prompt is printed before every input line
	Prompt string `yaml:"prompt,omitempty"`

	UI  UIConfig  `yaml:"ui,omitempty"`
	Log LogConfig `yaml:"log,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.UI.Mode == "" {
		c.UI.Mode = ModeTUI
	}
	if c.UI.Color == nil {
		enabled := true
		c.UI.Color = &enabled
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ColorEnabled reports whether the plain shell may use colors.
func (c Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}

// Validate checks values that cannot be silently defaulted.
func (c Config) Validate() error {
	if c.UI.Mode != ModeTUI && c.UI.Mode != ModePlain {
		return fmt.Errorf("ui.mode must be %q or %q, got %q", ModeTUI, ModePlain, c.UI.Mode)
	}
	return nil
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "contact-book", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file yields defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfig reads the configuration from the default location.
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return Load(configPath)
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create config directory %s: %w", filepath.Dir(path), err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// SaveConfig writes cfg to the default location.
func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return Save(configPath, cfg)
}
