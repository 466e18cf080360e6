// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tags implements the "relaygroups tags" commands, which read a
// group manifest and print one of its sections encoded as a Nostr tag
// list.
package tags
