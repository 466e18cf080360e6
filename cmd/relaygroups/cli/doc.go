// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the relaygroups
// CLI.
//
// The central type is [Command]: a named command with optional nested
// [Command.Subcommands], a [Command.Params] factory whose struct tags
// declare the flags, and a [Command.Run] function receiving a context,
// the positional arguments, and a structured logger.
//
// Flags are declared on parameter structs:
//
//	type formatParams struct {
//	    cli.JSONOutput
//	    Relay string `json:"relay" flag:"relay,r" desc:"relay URL"`
//	}
//
// [BindFlags] reflects over the tags and registers pflag entries.
// Unknown commands and flags get "did you mean" suggestions based on
// edit distance.
//
// Errors returned by commands are classified with [ToolError]
// (validation, not found, internal) so callers can tell bad input from
// bugs. [ExitError] carries a non-zero exit code for commands that
// have already written their own failure output.
//
// Command output goes to the writer carried by the context
// ([WithOutput], [Output]); it defaults to stdout, and tests capture it
// with a buffer.
package cli
