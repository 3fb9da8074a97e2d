// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"testing"

	"contact-book/internal/command"
	"contact-book/internal/contacts"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (model, *command.Dispatcher) {
	t.Helper()
	d := command.NewDispatcher(contacts.NewAddressBook())
	m := InitialModel(d, "> ")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(model), d
}

// typeLine enters text into the prompt and presses enter.
func typeLine(t *testing.T, m model, line string) (model, tea.Cmd) {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	m = updated.(model)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(model), cmd
}

func TestModel_SubmitDispatchesCommand(t *testing.T) {
	m, d := newTestModel(t)

	m, cmd := typeLine(t, m, "add Ivan 0987678989")
	require.Nil(t, cmd)
	require.Equal(t, 1, d.Book().Len())
	require.Len(t, m.history, 1)
	require.Equal(t, "add Ivan 0987678989", m.history[0].input)
	require.Equal(t, "Contact Ivan successfully added!", m.history[0].reply.Text)
	require.Empty(t, m.input.Value())
	require.Contains(t, m.View(), "Contact Ivan successfully added!")
}

func TestModel_ErrorsStayInTranscript(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := typeLine(t, m, "find Ghost")
	require.Nil(t, cmd)
	require.False(t, m.quitting)
	require.Error(t, m.history[0].reply.Err)
	require.Contains(t, m.renderTranscript(), "Contact Ghost not found")
}

func TestModel_ExitCommandQuits(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := typeLine(t, m, "good bye")
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, m.quitting)
	require.Equal(t, "Good bye!\n", m.View())
}

func TestModel_QuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(model)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, m.quitting)
	require.Empty(t, m.View())
}

func TestModel_ViewBeforeSize(t *testing.T) {
	d := command.NewDispatcher(contacts.NewAddressBook())
	m := InitialModel(d, "> ")
	require.Equal(t, "Starting...", m.View())
	require.NotNil(t, m.Init())
}

func TestModel_ResizeKeepsMinimumTranscript(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	m = updated.(model)
	require.Equal(t, minTranscriptHeight, m.viewport.Height)
	require.GreaterOrEqual(t, m.input.Width, 1)
}
