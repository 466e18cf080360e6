// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal styling shared by relaygroups
// commands: a color theme keyed by group event category and a table
// renderer that aligns columns before applying color, so escape codes
// never disturb the layout.
//
// Styling is opt-in per writer. Commands enable it only when stdout is
// a terminal; piped output and test buffers get plain text.
package tui
