// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package command

import (
	"errors"
	"fmt"

	"contact-book/internal/contacts"
)

// MissingArgumentError indicates that a command was given fewer positional
// arguments than it needs.
type MissingArgumentError struct {
	Kind  Kind
	Usage string
}

// Error implements the error interface.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing arguments for %s: usage %q", e.Kind, e.Usage)
}

// NotFoundError indicates that no contact is stored under Name.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("contact not found: %q", e.Name)
}

// Describe turns a handler error into the text shown to the user. It is the
// single place where failures become prompt output.
func Describe(err error) string {
	var (
		missing    *MissingArgumentError
		notFound   *NotFoundError
		validation *contacts.ValidationError
	)
	switch {
	case errors.As(err, &missing):
		return "Please enter the command in the format:\n" + missing.Usage
	case errors.As(err, &notFound):
		return fmt.Sprintf("Contact %s not found", notFound.Name)
	case errors.As(err, &validation):
		return fmt.Sprintf("Incorrectly entered %s %q: %s", validation.Field, validation.Value, validation.Rule)
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}
