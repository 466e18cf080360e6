// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration used for tag
// lists and group identifiers.
//
// JSON is the format users see (CLI output, manifests, conformance
// vectors). CBOR is the format that gets hashed: a conformance digest
// is computed over the CBOR encoding of a tag list, so two
// implementations agree on a digest exactly when they agree on every
// tag byte. That only holds if the encoding itself is deterministic,
// and the encoder here uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items.
//
//	data, err := codec.Marshal(metadata.Tags())
//	err = codec.Unmarshal(data, &tags)
//
// Types implementing encoding.TextMarshaler (ref.GroupID, ref.URL,
// ref.PublicKey, group.Privacy) encode as CBOR text strings holding
// their canonical form rather than as empty maps of unexported fields.
package codec
