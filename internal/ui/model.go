// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the full-screen interactive shell on top of Bubble
// Tea. Commands are dispatched synchronously inside Update, which keeps the
// address book confined to the program's event loop.
package ui

import (
	"strings"

	"contact-book/internal/command"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// exchange is one submitted line and the reply it produced.
type exchange struct {
	input string
	reply command.Reply
}

type model struct {
	dispatcher *command.Dispatcher
	keymap     KeyMap

	input    textinput.Model
	viewport viewport.Model
	history  []exchange

	width    int
	height   int
	ready    bool
	quitting bool
}

// InitialModel builds the shell model around d.
func InitialModel(d *command.Dispatcher, prompt string) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "help"
	ti.Focus()

	return model{
		dispatcher: d,
		keymap:     DefaultKeyMap,
		input:      ti,
		viewport:   viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Submit):
			return m.submit()
		case key.Matches(msg, m.keymap.PgUp), key.Matches(msg, m.keymap.PgDown):
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)
	return m, tea.Batch(cmds...)
}

// submit runs the current input line through the dispatcher.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	reply := m.dispatcher.Handle(line)
	m.history = append(m.history, exchange{input: line, reply: reply})
	m.input.Reset()
	m.refreshTranscript()

	if reply.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) resize() {
	w := max(m.width-borderSize, 1)
	h := max(m.height-headerHeight-inputHeight-footerHeight-borderSize, minTranscriptHeight)
	m.viewport.Width = w
	m.viewport.Height = h
	m.input.Width = max(w-lipgloss.Width(m.input.Prompt)-1, 1)
	m.refreshTranscript()
}

func (m *model) refreshTranscript() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m model) renderTranscript() string {
	var b strings.Builder
	for i, ex := range m.history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(echoStyle.Render("> "+ex.input) + "\n")
		style := successStyle
		if ex.reply.Err != nil {
			style = errorStyle
		}
		b.WriteString(style.Render(ex.reply.Text) + "\n")
	}
	return b.String()
}

func (m model) renderFooter() string {
	var parts []string
	for _, binding := range m.keymap.ShortHelp() {
		h := binding.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return "\n" + strings.Join(parts, footerSeparatorStyle.Render(" | "))
}

func (m model) View() string {
	if m.quitting {
		// Only the farewell stays on screen once the program ends.
		if n := len(m.history); n > 0 && m.history[n-1].reply.Exit {
			return m.history[n-1].reply.Text + "\n"
		}
		return ""
	}
	if !m.ready {
		return "Starting..."
	}

	header := titleStyle.Render("Contact Book")
	body := mainContentBorderStyle.Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.input.View(), m.renderFooter())
}
