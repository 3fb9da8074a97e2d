// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"

	"contact-book/internal/command"
	"contact-book/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the full-screen shell until the user exits.
func RunTUI(d *command.Dispatcher, prompt string) error {
	m := ui.InitialModel(d, prompt)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
