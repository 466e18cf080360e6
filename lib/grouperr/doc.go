// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package grouperr defines the closed set of failure kinds shared by
// the relay-based groups packages (lib/ref, lib/schema/group,
// lib/groupevent, lib/manifest).
//
// Every failure is returned, never raised: validation aborts
// construction before a value exists, so callers never observe a
// partially valid identifier or fact record.
//
// Callers branch on the [Kind], not on message text:
//
//	if errors.Is(err, grouperr.InvalidGroupID) {
//	    // ask the user for a different id
//	}
//
// or extract it with [KindOf]. Messages are for humans and may change;
// the Display prefix of each kind is stable.
//
// This package has no internal dependencies.
package grouperr
