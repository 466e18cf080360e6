// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the relaygroups CLI configuration.
//
// Configuration comes from a single YAML file named by:
//   - the RELAYGROUPS_CONFIG environment variable, or
//   - the --config flag passed to the command
//
// There is no discovery and no fallback search path. A command that
// needs no configuration runs without a file at all; one that does
// fails with a message naming both ways to supply it.
//
// The file may contain development, staging, and production sections
// whose non-empty fields override the base values when the
// environment matches.
package config
