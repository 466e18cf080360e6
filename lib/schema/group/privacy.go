// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package group

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/relaygroups/lib/grouperr"
)

// Privacy controls who can read the group. The zero value is
// PrivacyPublic.
type Privacy uint8

const (
	// PrivacyPublic groups can be read by anyone.
	PrivacyPublic Privacy = iota
	// PrivacyPrivate groups are visible only to members.
	PrivacyPrivate
)

// String returns the canonical lowercase token ("public", "private").
func (p Privacy) String() string {
	switch p {
	case PrivacyPublic:
		return "public"
	case PrivacyPrivate:
		return "private"
	default:
		return fmt.Sprintf("Privacy(%d)", uint8(p))
	}
}

// ParsePrivacy parses a privacy token case-insensitively. Whitespace
// is significant: " public" is rejected. Any other token fails with
// grouperr.InvalidPrivacy carrying the input verbatim.
func ParsePrivacy(raw string) (Privacy, error) {
	switch strings.ToLower(raw) {
	case "public":
		return PrivacyPublic, nil
	case "private":
		return PrivacyPrivate, nil
	default:
		return 0, grouperr.New(grouperr.InvalidPrivacy, "expected 'public' or 'private', got: %s", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Privacy) MarshalText() ([]byte, error) {
	if p > PrivacyPrivate {
		return nil, fmt.Errorf("cannot marshal %s", p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Privacy) UnmarshalText(data []byte) error {
	parsed, err := ParsePrivacy(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// AccessModel controls whether join requests are approved
// automatically. The zero value is AccessOpen.
type AccessModel uint8

const (
	// AccessOpen groups approve join requests automatically.
	AccessOpen AccessModel = iota
	// AccessClosed groups require an admin to approve join requests.
	AccessClosed
)

// String returns the canonical lowercase token ("open", "closed").
func (a AccessModel) String() string {
	switch a {
	case AccessOpen:
		return "open"
	case AccessClosed:
		return "closed"
	default:
		return fmt.Sprintf("AccessModel(%d)", uint8(a))
	}
}

// ParseAccessModel parses an access model token case-insensitively,
// with the same whitespace rule as ParsePrivacy. Any other token fails
// with grouperr.InvalidAccessModel.
func ParseAccessModel(raw string) (AccessModel, error) {
	switch strings.ToLower(raw) {
	case "open":
		return AccessOpen, nil
	case "closed":
		return AccessClosed, nil
	default:
		return 0, grouperr.New(grouperr.InvalidAccessModel, "expected 'open' or 'closed', got: %s", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a AccessModel) MarshalText() ([]byte, error) {
	if a > AccessClosed {
		return nil, fmt.Errorf("cannot marshal %s", a)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AccessModel) UnmarshalText(data []byte) error {
	parsed, err := ParseAccessModel(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
