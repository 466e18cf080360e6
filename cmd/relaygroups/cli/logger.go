// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command
// operations. When stderr is a terminal, uses slog.TextHandler for
// human-readable output. When stderr is piped or redirected, uses
// slog.JSONHandler for machine-parseable output.
//
// The level is Info unless RELAYGROUPS_DEBUG is set to a non-empty
// value, in which case it is Debug.
func NewCommandLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("RELAYGROUPS_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return newLogger(os.Stderr, IsTerminal(os.Stderr), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// IsTerminal reports whether w is a terminal. Writers that are not
// files (buffers in tests) are never terminals.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// DiscardLogger returns a logger that drops every record. Tests pass it
// as the root command's Logger.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
