// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the interactive shell.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the shell.
type KeyMap struct {
	Submit key.Binding // Run the typed command
	Quit   key.Binding // Leave without typing an exit command
	PgUp   key.Binding // Scroll the transcript up
	PgDown key.Binding // Scroll the transcript down
}

// DefaultKeyMap provides the default keybindings. Letter keys are left to the
// text input, so quitting needs ctrl+c or esc.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc/ctrl+c", "quit"),
	),
	PgUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	PgDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.PgUp, k.PgDown, k.Quit}
}
