// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package main

import "contact-book/cmd/cli"

func main() {
	// Without a subcommand the root command opens the interactive shell in
	// the configured mode; subcommands select a mode or manage config.
	cli.RunCLI()
}
