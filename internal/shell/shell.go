// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package shell runs the plain line-by-line prompt: read a line, hand it to
// the dispatcher, print the reply, repeat until an exit command or EOF.
package shell

import (
	"bufio"
	"fmt"
	"io"

	"contact-book/internal/command"
	"contact-book/internal/logger"

	"github.com/fatih/color"
)

// Shell is a read-eval-print loop bound to one dispatcher.
type Shell struct {
	dispatcher *command.Dispatcher
	prompt     string
	in         io.Reader
	out        io.Writer

	promptColor  *color.Color
	replyColor   *color.Color
	errorColor   *color.Color
	goodbyeColor *color.Color
}

// New creates a shell. When useColor is false all output is plain text;
// otherwise colors follow color.NoColor, which is set for non-terminal output.
func New(d *command.Dispatcher, prompt string, in io.Reader, out io.Writer, useColor bool) *Shell {
	s := &Shell{
		dispatcher:   d,
		prompt:       prompt,
		in:           in,
		out:          out,
		promptColor:  color.New(color.FgCyan),
		replyColor:   color.New(color.FgGreen),
		errorColor:   color.New(color.FgRed),
		goodbyeColor: color.New(color.FgYellow),
	}
	if !useColor {
		for _, c := range []*color.Color{s.promptColor, s.replyColor, s.errorColor, s.goodbyeColor} {
			c.DisableColor()
		}
	}
	return s
}

// Run loops until the user exits or input ends. It only returns an error
// when reading input fails.
func (s *Shell) Run() error {
	scanner := bufio.NewScanner(s.in)
	for {
		s.promptColor.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			logger.Info("input closed, leaving shell")
			return nil
		}

		reply := s.dispatcher.Handle(scanner.Text())
		switch {
		case reply.Exit:
			s.goodbyeColor.Fprintln(s.out, reply.Text)
			return nil
		case reply.Err != nil:
			s.errorColor.Fprintln(s.out, reply.Text)
		default:
			s.replyColor.Fprintln(s.out, reply.Text)
		}
	}
}
