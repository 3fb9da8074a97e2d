// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strings"

	"contact-book/internal/config"

	"github.com/spf13/cobra"
)

// completeFrom filters candidates by the prefix typed so far.
func completeFrom(candidates []string, toComplete string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, strings.ToLower(toComplete)) {
			out = append(out, c)
		}
	}
	return out
}

// modeCompletionFunc completes the single argument of "config set-mode".
func modeCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeFrom([]string{config.ModeTUI, config.ModePlain}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// logLevelCompletionFunc completes the --log-level flag.
func logLevelCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom([]string{"debug", "info", "warn", "error"}, toComplete), cobra.ShellCompDirectiveNoFileComp
}
