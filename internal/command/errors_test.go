// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package command

import (
	"errors"
	"fmt"
	"testing"

	"contact-book/internal/contacts"

	"github.com/stretchr/testify/require"
)

func TestMissingArgumentError_Error(t *testing.T) {
	err := &MissingArgumentError{Kind: KindFind, Usage: "find <name>"}
	require.Equal(t, `missing arguments for find: usage "find <name>"`, err.Error())
}

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{Name: "Ghost"}
	require.Equal(t, `contact not found: "Ghost"`, err.Error())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing argument",
			err:  &MissingArgumentError{Kind: KindFind, Usage: "find <name>"},
			want: "Please enter the command in the format:\nfind <name>",
		},
		{
			name: "not found",
			err:  &NotFoundError{Name: "Ghost"},
			want: "Contact Ghost not found",
		},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("lookup: %w", &NotFoundError{Name: "Ghost"}),
			want: "Contact Ghost not found",
		},
		{
			name: "validation",
			err:  &contacts.ValidationError{Field: "phone", Value: "123", Rule: "expected exactly 10 digits"},
			want: `Incorrectly entered phone "123": expected exactly 10 digits`,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "Something went wrong: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Describe(tt.err))
		})
	}
}
