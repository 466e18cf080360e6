// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for the relay groups
// packages.
//
// [SecretKey], [PublicKey] and [PublicKeyHex] derive deterministic key
// pairs from small integers, so tests can name "key 1" and "key 2"
// without embedding hex literals and without randomness. Keys are real
// secp256k1 keys derived through go-nostr, so they pass the same
// validation as production input.
//
// [Relay] and [GroupID] build the fixed relay URL and group identifiers
// used across the test suite.
//
// [WriteTempFile] writes fixture files (manifests, config) into a
// per-test temporary directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
