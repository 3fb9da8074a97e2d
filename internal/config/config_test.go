// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0640))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, DefaultPageSize, cfg.PageSize)
	require.Equal(t, DefaultPrompt, cfg.Prompt)
	require.Equal(t, ModeTUI, cfg.UI.Mode)
	require.True(t, cfg.ColorEnabled())
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ReadsValues(t *testing.T) {
	path := writeConfig(t, `
page_size: 10
prompt: "> "
ui:
  mode: plain
  color: false
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.PageSize)
	require.Equal(t, "> ", cfg.Prompt)
	require.Equal(t, ModePlain, cfg.UI.Mode)
	require.False(t, cfg.ColorEnabled())
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_NonPositivePageSizeFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "page_size: -3\n"))
	require.NoError(t, err)
	require.Equal(t, DefaultPageSize, cfg.PageSize)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "malformed yaml", body: "page_size: [1,", want: "failed to parse config file"},
		{name: "unknown mode", body: "ui:\n  mode: gui\n", want: "ui.mode must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.PageSize = 7
	cfg.UI.Mode = ModePlain

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.UI.Mode = "gui"
	err := Save(filepath.Join(t.TempDir(), "config.yaml"), cfg)
	require.Error(t, err)
}
