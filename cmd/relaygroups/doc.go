// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Relaygroups is a CLI for NIP-29 relay-based groups. It parses and
// formats group identifiers, classifies event kinds, encodes group
// manifests into the tag lists relays publish, builds and signs group
// events, and runs the tag codec conformance vectors.
package main
