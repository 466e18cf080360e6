// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"

	"github.com/nbd-wtf/go-nostr"
)

// PublicKey is a validated x-only secp256k1 public key in its 64
// character lowercase hex form, the representation used in "p" tags
// and in an event's pubkey field.
//
// PublicKey is an immutable, comparable value type. The zero value is
// not valid; use IsZero to check.
type PublicKey struct {
	hex string
}

// ParsePublicKey validates a hex-encoded public key. The key must be
// exactly 64 lowercase hex characters and decode to a point on the
// curve.
func ParsePublicKey(raw string) (PublicKey, error) {
	if raw == "" {
		return PublicKey{}, fmt.Errorf("empty public key")
	}
	if !isLowerHex32(raw) {
		return PublicKey{}, fmt.Errorf("public key %q: must be %d lowercase hex characters", raw, hexKeyLength)
	}
	if !nostr.IsValidPublicKey(raw) {
		return PublicKey{}, fmt.Errorf("public key %q: not a valid curve point", raw)
	}
	return PublicKey{hex: raw}, nil
}

// MustParsePublicKey is like ParsePublicKey but panics on error. Use in
// tests and static initialization where the input is known-valid.
func MustParsePublicKey(raw string) PublicKey {
	k, err := ParsePublicKey(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParsePublicKey(%q): %v", raw, err))
	}
	return k
}

// String returns the hex-encoded key.
func (k PublicKey) String() string { return k.hex }

// IsZero reports whether the PublicKey is the zero value (uninitialized).
func (k PublicKey) IsZero() bool { return k.hex == "" }

// Compare orders keys by their hex form, which matches byte order.
func (k PublicKey) Compare(other PublicKey) int { return strings.Compare(k.hex, other.hex) }

// MarshalText implements encoding.TextMarshaler.
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.hex), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value.
func (k *PublicKey) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*k = PublicKey{}
		return nil
	}
	parsed, err := ParsePublicKey(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
