// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/bureau-foundation/relaygroups/lib/grouperr"
)

// GroupID identifies a group hosted on a relay. Its wire form is
// "<relay-url>'<group-id>" (e.g., "wss://relay.example.com'rust-devs"),
// with exactly one apostrophe delimiter.
//
// The id is non-empty and restricted to a-z, 0-9, '-' and '_'. The id
// "_" (TopLevelGroupID) is the relay-local top-level group.
//
// GroupID is an immutable, comparable value type: NewGroupID and
// ParseGroupID are the only ways to obtain a non-zero instance, and
// both validate. Two GroupIDs are equal when relay and id are equal,
// so the type works as a map key or set element. The zero value is not
// valid; use IsZero to check.
type GroupID struct {
	relay URL
	id    string
}

// NewGroupID creates a validated group identifier. Returns a
// grouperr.InvalidGroupID error if id is empty or contains a character
// outside [a-z0-9_-], or if relay is the zero value.
func NewGroupID(relay URL, id string) (GroupID, error) {
	if id == "" {
		return GroupID{}, grouperr.New(grouperr.InvalidGroupID, "group ID cannot be empty")
	}
	if !validGroupID(id) {
		return GroupID{}, grouperr.New(grouperr.InvalidGroupID, "group ID must contain only: a-z, 0-9, -, _ (got %q)", id)
	}
	if relay.IsZero() {
		return GroupID{}, grouperr.New(grouperr.InvalidGroupID, "relay URL is zero-value")
	}
	return GroupID{relay: relay, id: id}, nil
}

// ParseGroupID parses the "<relay-url>'<group-id>" wire form. The
// string must split into exactly two parts on the apostrophe; the
// first is parsed as a URL and the second is validated as by
// NewGroupID. Delimiter and URL failures are
// grouperr.InvalidGroupIdentifier; id failures are
// grouperr.InvalidGroupID.
//
// URL normalization may add a trailing slash that the input lacked, so
// ParseGroupID(g.String()) equals g but the relay's string form need
// not match the original input byte for byte.
func ParseGroupID(raw string) (GroupID, error) {
	parts := strings.Split(raw, groupIDDelimiter)
	if len(parts) != 2 {
		return GroupID{}, grouperr.New(grouperr.InvalidGroupIdentifier,
			"expected format: relay-url'group-id, got %q", raw)
	}

	relay, err := ParseURL(parts[0])
	if err != nil {
		return GroupID{}, grouperr.Wrap(grouperr.InvalidGroupIdentifier, err, "invalid relay URL")
	}

	return NewGroupID(relay, parts[1])
}

// MustParseGroupID is like ParseGroupID but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParseGroupID(raw string) GroupID {
	g, err := ParseGroupID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseGroupID(%q): %v", raw, err))
	}
	return g
}

// Relay returns the relay URL hosting the group.
func (g GroupID) Relay() URL { return g.relay }

// ID returns the relay-local group id (e.g., "rust-devs").
func (g GroupID) ID() string { return g.id }

// IsTopLevel reports whether this is the relay-local top-level group.
func (g GroupID) IsTopLevel() bool { return g.id == TopLevelGroupID }

// IsZero reports whether the GroupID is the zero value (uninitialized).
func (g GroupID) IsZero() bool { return g.id == "" }

// String returns the canonical wire form: the relay URL with one
// trailing slash removed (if present), an apostrophe, and the id.
// This is a formatting rule, not URL normalization.
func (g GroupID) String() string {
	if g.IsZero() {
		return ""
	}
	return strings.TrimSuffix(g.relay.String(), "/") + groupIDDelimiter + g.id
}

// TagValue returns the canonical wire form for use as a tag value.
// Identical to String.
func (g GroupID) TagValue() string { return g.String() }

// Compare orders group identifiers by relay URL, then by id.
func (g GroupID) Compare(other GroupID) int {
	if c := g.relay.Compare(other.relay); c != 0 {
		return c
	}
	return cmp.Compare(g.id, other.id)
}

// MarshalText implements encoding.TextMarshaler using the canonical
// wire form.
func (g GroupID) MarshalText() ([]byte, error) {
	if g.IsZero() {
		return []byte{}, nil
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parses the
// canonical wire form. An empty input produces the zero value.
func (g *GroupID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*g = GroupID{}
		return nil
	}
	parsed, err := ParseGroupID(string(data))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
