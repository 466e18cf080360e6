// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package group

import (
	"slices"

	"github.com/nbd-wtf/go-nostr"
)

// Role is a named role that admins can hold. Roles carry no
// permissions here; what a role may do is relay policy.
type Role struct {
	Name        string
	Description *string
}

// NewRole returns a role with no description.
func NewRole(name string) Role {
	return Role{Name: name}
}

// NewRoleWithDescription returns a role with a description.
func NewRoleWithDescription(name, description string) Role {
	return Role{Name: name, Description: &description}
}

// Tag encodes the role as ["role", name] or ["role", name, description].
func (r Role) Tag() nostr.Tag {
	if r.Description != nil {
		return nostr.Tag{TagRole, r.Name, *r.Description}
	}
	return nostr.Tag{TagRole, r.Name}
}

// GroupRoles is an ordered list of role definitions. It is a value
// type: AddRole returns a new list and never modifies the receiver.
type GroupRoles struct {
	roles []Role
}

// NewGroupRoles returns a list holding roles in order.
func NewGroupRoles(roles ...Role) GroupRoles {
	return GroupRoles{roles: slices.Clone(roles)}
}

// AddRole returns a new list with role appended.
func (g GroupRoles) AddRole(role Role) GroupRoles {
	return GroupRoles{roles: append(slices.Clip(g.roles), role)}
}

// Roles returns a copy of the role list.
func (g GroupRoles) Roles() []Role { return slices.Clone(g.roles) }

// Len returns the number of roles.
func (g GroupRoles) Len() int { return len(g.roles) }

// Tags encodes one role tag per role, in list order. An empty list
// yields an empty, non-nil tag list.
func (g GroupRoles) Tags() nostr.Tags {
	tags := make(nostr.Tags, 0, len(g.roles))
	for _, role := range g.roles {
		tags = append(tags, role.Tag())
	}
	return tags
}
