// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

const (
	headerHeight = 1 // Height reserved for the title line.
	inputHeight  = 1 // The prompt line below the transcript.
	footerHeight = 2 // Blank line plus key help.
	borderSize   = 2 // Rounded border around the transcript, top+bottom or left+right.

	// Lines below this are never rendered even on tiny terminals.
	minTranscriptHeight = 3
)
