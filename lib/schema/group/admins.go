// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package group

import (
	"slices"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/lib/ref"
)

// GroupAdmin is a user holding zero or more role names.
type GroupAdmin struct {
	PublicKey ref.PublicKey
	Roles     []string
}

// NewGroupAdmin returns an admin holding roles in order.
func NewGroupAdmin(publicKey ref.PublicKey, roles ...string) GroupAdmin {
	return GroupAdmin{PublicKey: publicKey, Roles: slices.Clone(roles)}
}

// GroupAdmins is an ordered list of admins. Like GroupRoles it is a
// value type with copy-on-append semantics.
type GroupAdmins struct {
	admins []GroupAdmin
}

// NewGroupAdmins returns a list holding admins in order. Each admin's
// roles are copied.
func NewGroupAdmins(admins ...GroupAdmin) GroupAdmins {
	return GroupAdmins{admins: cloneAdmins(admins)}
}

// AddAdmin returns a new list with admin appended.
func (g GroupAdmins) AddAdmin(admin GroupAdmin) GroupAdmins {
	admin.Roles = slices.Clone(admin.Roles)
	return GroupAdmins{admins: append(slices.Clip(g.admins), admin)}
}

// Admins returns a copy of the admin list. The role slices are copied
// too.
func (g GroupAdmins) Admins() []GroupAdmin {
	return cloneAdmins(g.admins)
}

func cloneAdmins(admins []GroupAdmin) []GroupAdmin {
	if admins == nil {
		return nil
	}
	cloned := make([]GroupAdmin, len(admins))
	for i, admin := range admins {
		cloned[i] = GroupAdmin{PublicKey: admin.PublicKey, Roles: slices.Clone(admin.Roles)}
	}
	return cloned
}

// Len returns the number of admins.
func (g GroupAdmins) Len() int { return len(g.admins) }

// Tags encodes each admin as a ["p", pubkey] tag followed by one
// ["role", name] tag per role. Admins are interleaved with their roles,
// so the output is not grouped by tag name.
func (g GroupAdmins) Tags() nostr.Tags {
	count := 0
	for _, admin := range g.admins {
		count += 1 + len(admin.Roles)
	}
	tags := make(nostr.Tags, 0, count)
	for _, admin := range g.admins {
		tags = append(tags, nostr.Tag{TagPublicKey, admin.PublicKey.String()})
		for _, role := range admin.Roles {
			tags = append(tags, nostr.Tag{TagRole, role})
		}
	}
	return tags
}
