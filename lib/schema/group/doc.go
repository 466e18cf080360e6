// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package group defines the relay-based group protocol (NIP-29): the
// numeric event kinds and their classification, the privacy and access
// model enumerations, and the structured group facts (metadata, roles,
// admins, members) together with their encoding into event tags.
//
// Kinds fall into three disjoint categories, each held in a sorted
// table and tested by binary search:
//
//   - moderation (9000-9009 minus the reserved 9003, 9004, 9006),
//     relay-enforced administrative actions: [IsGroupModeration]
//   - metadata (39000-39003), addressable events the relay publishes
//     to describe a group: [IsGroupMetadata]
//   - user (9021, 9022), join and leave requests
//
// [IsGroupEvent] is true for the union of the three.
//
// The fact records ([GroupMetadata], [GroupRoles], [GroupAdmins],
// [GroupMembers]) are immutable values. The list-valued ones grow by
// copy-on-append: AddRole, AddAdmin and AddMember return a new value
// and never modify the receiver. Each record's Tags method produces a
// freshly allocated nostr.Tags in a fixed order; the order is part of
// the wire contract because consumers match tags by position.
//
// A fact record does not carry its GroupID. The caller passes the
// identifier to the event construction layer (lib/groupevent)
// alongside the tags.
//
// Decoding tags back into fact records is not provided.
package group
