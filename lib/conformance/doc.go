// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package conformance checks the tag codecs against a fixed set of
// vectors and computes digests that let two implementations compare
// tag lists without exchanging them.
//
// A digest is the BLAKE3 keyed hash of the tag list's deterministic
// CBOR encoding (lib/codec). The key is a fixed domain constant, so a
// tag-list digest can never collide with a BLAKE3 hash computed for
// any other purpose over the same bytes.
//
// The vectors live in vectors.jsonc, embedded at build time. Each one
// names a codec, gives a manifest fragment as input, and states either
// the exact tag list expected or the error kind expected. RunAll checks
// every vector and reports per-vector results.
package conformance
