// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package group

import (
	"slices"
	"strconv"
)

// Kind is a numeric event kind code.
type Kind uint16

// Moderation kinds. Sent by admins; the relay decides whether to honor
// them.
const (
	// KindPutUser adds a user to the group or updates their roles.
	KindPutUser Kind = 9000
	// KindRemoveUser removes a user from the group.
	KindRemoveUser Kind = 9001
	// KindEditMetadata changes the group's metadata.
	KindEditMetadata Kind = 9002
	// KindDeleteEvent deletes an event from the group.
	KindDeleteEvent Kind = 9005
	// KindCreateGroup creates the group.
	KindCreateGroup Kind = 9007
	// KindDeleteGroup deletes the group.
	KindDeleteGroup Kind = 9008
	// KindCreateInvite creates an invite code.
	KindCreateInvite Kind = 9009
)

// User kinds. Sent by any user about themselves.
const (
	KindJoinRequest  Kind = 9021
	KindLeaveRequest Kind = 9022
)

// Metadata kinds. Addressable events (replaceable by "d" tag) that the
// relay signs and publishes to describe the group.
const (
	KindGroupMetadata Kind = 39000
	KindGroupAdmins   Kind = 39001
	KindGroupMembers  Kind = 39002
	KindGroupRoles    Kind = 39003
)

// KindChatMessage is the plain chat message kind posted into a group.
// It is not a group kind for classification purposes: any event kind
// can be scoped to a group with an "h" tag.
const KindChatMessage Kind = 9

// The classification tables. Each must stay in ascending order:
// membership is tested with binary search, and an unsorted table gives
// wrong answers rather than an error. The gaps in moderationKinds are
// reserved codes and must not be replaced by a range check.
var (
	moderationKinds = [...]Kind{9000, 9001, 9002, 9005, 9007, 9008, 9009}
	metadataKinds   = [...]Kind{39000, 39001, 39002, 39003}
	userKinds       = [...]Kind{9021, 9022}
)

// ModerationKinds returns a copy of the moderation kind table.
func ModerationKinds() []Kind { return slices.Clone(moderationKinds[:]) }

// MetadataKinds returns a copy of the metadata kind table.
func MetadataKinds() []Kind { return slices.Clone(metadataKinds[:]) }

// UserKinds returns a copy of the user kind table.
func UserKinds() []Kind { return slices.Clone(userKinds[:]) }

func contains(table []Kind, kind Kind) bool {
	_, found := slices.BinarySearch(table, kind)
	return found
}

// IsGroupModeration reports whether kind is a moderation event.
func IsGroupModeration(kind Kind) bool { return contains(moderationKinds[:], kind) }

// IsGroupMetadata reports whether kind is an addressable group
// metadata event.
func IsGroupMetadata(kind Kind) bool { return contains(metadataKinds[:], kind) }

// IsGroupUser reports whether kind is a user join or leave request.
func IsGroupUser(kind Kind) bool { return contains(userKinds[:], kind) }

// IsGroupEvent reports whether kind is in any of the three tables.
func IsGroupEvent(kind Kind) bool {
	return IsGroupModeration(kind) || IsGroupMetadata(kind) || IsGroupUser(kind)
}

// KindFromInt converts an event's int kind (as carried by nostr.Event)
// to a Kind. Returns false when the value does not fit in 16 bits.
func KindFromInt(value int) (Kind, bool) {
	if value < 0 || value > 0xFFFF {
		return 0, false
	}
	return Kind(value), true
}

// Int returns the kind as an int, the type nostr.Event uses.
func (k Kind) Int() int { return int(k) }

// IsModeration reports whether k is a moderation event.
func (k Kind) IsModeration() bool { return IsGroupModeration(k) }

// IsMetadata reports whether k is a group metadata event.
func (k Kind) IsMetadata() bool { return IsGroupMetadata(k) }

// IsGroupEvent reports whether k is any group kind.
func (k Kind) IsGroupEvent() bool { return IsGroupEvent(k) }

// IsAddressable reports whether events of this kind are scoped by a
// "d" tag rather than an "h" tag.
func (k Kind) IsAddressable() bool { return IsGroupMetadata(k) }

// Category classifies a kind into one of the group categories.
type Category string

const (
	CategoryModeration Category = "moderation"
	CategoryMetadata   Category = "metadata"
	CategoryUser       Category = "user"
	CategoryNone       Category = "none"
)

// Category returns the kind's group category, or CategoryNone.
func (k Kind) Category() Category {
	switch {
	case IsGroupModeration(k):
		return CategoryModeration
	case IsGroupMetadata(k):
		return CategoryMetadata
	case IsGroupUser(k):
		return CategoryUser
	default:
		return CategoryNone
	}
}

var kindNames = map[Kind]string{
	KindPutUser:       "put-user",
	KindRemoveUser:    "remove-user",
	KindEditMetadata:  "edit-metadata",
	KindDeleteEvent:   "delete-event",
	KindCreateGroup:   "create-group",
	KindDeleteGroup:   "delete-group",
	KindCreateInvite:  "create-invite",
	KindJoinRequest:   "join-request",
	KindLeaveRequest:  "leave-request",
	KindGroupMetadata: "group-metadata",
	KindGroupAdmins:   "group-admins",
	KindGroupMembers:  "group-members",
	KindGroupRoles:    "group-roles",
	KindChatMessage:   "chat-message",
}

// String returns the catalog name of the kind (e.g., "put-user"), or
// "kind-<n>" for kinds outside the catalog.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind-" + strconv.Itoa(int(k))
}

// kindsByName is the reverse of kindNames.
var kindsByName = func() map[string]Kind {
	byName := make(map[string]Kind, len(kindNames))
	for kind, name := range kindNames {
		byName[name] = kind
	}
	return byName
}()

// ParseKindName is the inverse of String for catalog kinds.
func ParseKindName(name string) (Kind, bool) {
	kind, ok := kindsByName[name]
	return kind, ok
}

// Catalog returns every group kind (all three tables) in ascending
// order.
func Catalog() []Kind {
	kinds := make([]Kind, 0, len(moderationKinds)+len(metadataKinds)+len(userKinds))
	kinds = append(kinds, moderationKinds[:]...)
	kinds = append(kinds, userKinds[:]...)
	kinds = append(kinds, metadataKinds[:]...)
	return kinds
}
