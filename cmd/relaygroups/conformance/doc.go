// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package conformance implements "relaygroups conformance", which runs
// the tag codec conformance vectors and reports each result.
package conformance
