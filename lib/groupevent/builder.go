// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package groupevent

import (
	"errors"
	"fmt"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/lib/clock"
	"github.com/bureau-foundation/relaygroups/lib/ref"
	"github.com/bureau-foundation/relaygroups/lib/schema/group"
)

// ErrZeroGroup is returned when a builder is given a zero GroupID.
var ErrZeroGroup = errors.New("groupevent: group ID is zero-value")

// Builder constructs group events stamped with the time from its
// clock.
type Builder struct {
	clock clock.Clock
}

// NewBuilder returns a Builder reading timestamps from c.
func NewBuilder(c clock.Clock) *Builder {
	return &Builder{clock: c}
}

// scopeTag returns the group-scoping tag for kind.
func scopeTag(kind group.Kind, groupID ref.GroupID) nostr.Tag {
	if kind.IsAddressable() {
		return nostr.Tag{group.TagIdentifier, groupID.ID()}
	}
	return nostr.Tag{group.TagGroup, groupID.ID()}
}

// build assembles an event with the scoping tag followed by extra.
func (b *Builder) build(kind group.Kind, groupID ref.GroupID, content string, extra nostr.Tags) (nostr.Event, error) {
	if groupID.IsZero() {
		return nostr.Event{}, fmt.Errorf("building %s event: %w", kind, ErrZeroGroup)
	}
	tags := make(nostr.Tags, 0, 1+len(extra))
	tags = append(tags, scopeTag(kind, groupID))
	tags = append(tags, extra...)
	return nostr.Event{
		CreatedAt: nostr.Timestamp(b.clock.Now().Unix()),
		Kind:      kind.Int(),
		Tags:      tags,
		Content:   content,
	}, nil
}

// CreateGroup builds a kind 9007 event creating the group with the
// given initial metadata.
func (b *Builder) CreateGroup(groupID ref.GroupID, metadata group.GroupMetadata) (nostr.Event, error) {
	return b.build(group.KindCreateGroup, groupID, "", metadata.Tags())
}

// EditMetadata builds a kind 9002 event replacing the group's metadata.
func (b *Builder) EditMetadata(groupID ref.GroupID, metadata group.GroupMetadata) (nostr.Event, error) {
	return b.build(group.KindEditMetadata, groupID, "", metadata.Tags())
}

// PutUser builds a kind 9000 event adding publicKey to the group with
// the given roles. The roles ride in the same tag as the key:
// ["p", pubkey, role...].
func (b *Builder) PutUser(groupID ref.GroupID, publicKey ref.PublicKey, roles ...string) (nostr.Event, error) {
	if publicKey.IsZero() {
		return nostr.Event{}, errors.New("building put-user event: public key is zero-value")
	}
	tag := make(nostr.Tag, 0, 2+len(roles))
	tag = append(tag, group.TagPublicKey, publicKey.String())
	tag = append(tag, roles...)
	return b.build(group.KindPutUser, groupID, "", nostr.Tags{tag})
}

// RemoveUser builds a kind 9001 event removing publicKey from the
// group.
func (b *Builder) RemoveUser(groupID ref.GroupID, publicKey ref.PublicKey) (nostr.Event, error) {
	if publicKey.IsZero() {
		return nostr.Event{}, errors.New("building remove-user event: public key is zero-value")
	}
	return b.build(group.KindRemoveUser, groupID, "", nostr.Tags{{group.TagPublicKey, publicKey.String()}})
}

// DeleteEvent builds a kind 9005 event asking the relay to delete
// eventID from the group.
func (b *Builder) DeleteEvent(groupID ref.GroupID, eventID ref.EventID) (nostr.Event, error) {
	if eventID.IsZero() {
		return nostr.Event{}, errors.New("building delete-event event: event ID is zero-value")
	}
	return b.build(group.KindDeleteEvent, groupID, "", nostr.Tags{{group.TagEvent, eventID.String()}})
}

// DeleteGroup builds a kind 9008 event deleting the group.
func (b *Builder) DeleteGroup(groupID ref.GroupID) (nostr.Event, error) {
	return b.build(group.KindDeleteGroup, groupID, "", nil)
}

// CreateInvite builds a kind 9009 event. An empty code leaves the code
// for the relay to assign.
func (b *Builder) CreateInvite(groupID ref.GroupID, code string) (nostr.Event, error) {
	var extra nostr.Tags
	if code != "" {
		extra = nostr.Tags{{group.TagCode, code}}
	}
	return b.build(group.KindCreateInvite, groupID, "", extra)
}

// JoinRequest builds a kind 9021 event. The reason becomes the event
// content; an invite code, when given, is attached as a code tag.
func (b *Builder) JoinRequest(groupID ref.GroupID, reason, code string) (nostr.Event, error) {
	var extra nostr.Tags
	if code != "" {
		extra = nostr.Tags{{group.TagCode, code}}
	}
	return b.build(group.KindJoinRequest, groupID, reason, extra)
}

// LeaveRequest builds a kind 9022 event.
func (b *Builder) LeaveRequest(groupID ref.GroupID, reason string) (nostr.Event, error) {
	return b.build(group.KindLeaveRequest, groupID, reason, nil)
}

// Message builds a kind 9 chat message. Each previous event the client
// has seen in the group contributes its first eight hex characters to a
// single ["previous", ...] tag, which relays use to detect messages
// replayed out of context.
func (b *Builder) Message(groupID ref.GroupID, content string, previous ...ref.EventID) (nostr.Event, error) {
	var extra nostr.Tags
	if len(previous) > 0 {
		tag := make(nostr.Tag, 0, 1+len(previous))
		tag = append(tag, group.TagPrevious)
		for _, eventID := range previous {
			if eventID.IsZero() {
				return nostr.Event{}, errors.New("building chat message: previous event ID is zero-value")
			}
			tag = append(tag, eventID.Short())
		}
		extra = nostr.Tags{tag}
	}
	return b.build(group.KindChatMessage, groupID, content, extra)
}

// Metadata builds the relay-signed kind 39000 event describing the
// group.
func (b *Builder) Metadata(groupID ref.GroupID, metadata group.GroupMetadata) (nostr.Event, error) {
	return b.build(group.KindGroupMetadata, groupID, "", metadata.Tags())
}

// Admins builds the kind 39001 admin list event.
func (b *Builder) Admins(groupID ref.GroupID, admins group.GroupAdmins) (nostr.Event, error) {
	return b.build(group.KindGroupAdmins, groupID, "", admins.Tags())
}

// Members builds the kind 39002 member list event.
func (b *Builder) Members(groupID ref.GroupID, members group.GroupMembers) (nostr.Event, error) {
	return b.build(group.KindGroupMembers, groupID, "", members.Tags())
}

// Roles builds the kind 39003 role definition event.
func (b *Builder) Roles(groupID ref.GroupID, roles group.GroupRoles) (nostr.Event, error) {
	return b.build(group.KindGroupRoles, groupID, "", roles.Tags())
}
