// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package groupevent builds unsigned group events from the typed
// values in lib/ref and lib/schema/group.
//
// Every event carries exactly one group-scoping tag, placed first:
// ["h", "<id>"] for regular kinds and ["d", "<id>"] for the addressable
// 39000-series metadata kinds. The rest of the tag list comes from the
// fact codecs (GroupMetadata.Tags, GroupAdmins.Tags, ...) or from the
// per-kind arguments.
//
// Builders never sign. Sign and Verify wrap go-nostr's Schnorr
// signing for callers that hold a secret key.
//
// GroupFromEvent goes the other way: given a relay and an event, it
// recovers the GroupID the event is scoped to.
package groupevent
