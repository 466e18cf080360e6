// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package group

import (
	"slices"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/lib/ref"
)

// GroupMembers is an ordered list of member public keys. Duplicates are
// kept; whether they mean anything is up to the relay.
type GroupMembers struct {
	members []ref.PublicKey
}

// NewGroupMembers returns a list holding members in order.
func NewGroupMembers(members ...ref.PublicKey) GroupMembers {
	return GroupMembers{members: slices.Clone(members)}
}

// AddMember returns a new list with member appended.
func (g GroupMembers) AddMember(member ref.PublicKey) GroupMembers {
	return GroupMembers{members: append(slices.Clip(g.members), member)}
}

// Members returns a copy of the member list.
func (g GroupMembers) Members() []ref.PublicKey { return slices.Clone(g.members) }

// Len returns the number of members.
func (g GroupMembers) Len() int { return len(g.members) }

// Tags encodes one ["p", pubkey] tag per member, in list order.
func (g GroupMembers) Tags() nostr.Tags {
	tags := make(nostr.Tags, 0, len(g.members))
	for _, member := range g.members {
		tags = append(tags, nostr.Tag{TagPublicKey, member.String()})
	}
	return tags
}
