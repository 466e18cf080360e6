// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package kind implements the "relaygroups kind" commands, which
// classify event kinds against the group kind tables and list the
// catalog.
package kind
