// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable references for the
// identities that appear in relay-based group events: relay URLs,
// group identifiers, public keys, and event IDs.
//
// All constructors validate their inputs and return errors for invalid
// values. Once constructed, a ref is immutable and its invariant holds
// for the value's lifetime; there is no way to obtain an invalid
// instance other than the zero value, which every type reports through
// IsZero.
//
// The canonical serialization forms are:
//   - URL: the normalized URL string ("wss://relay.example.com/")
//   - GroupID: "<relay-without-trailing-slash>'<id>"
//     ("wss://relay.example.com'rust-devs")
//   - PublicKey, EventID: 64 lowercase hex characters
//
// Every type is comparable (usable as a map key) and has a Compare
// method giving a total structural order. JSON, YAML, and CBOR
// marshaling use the canonical form via encoding.TextMarshaler.
package ref
