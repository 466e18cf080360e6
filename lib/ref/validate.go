// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

const (
	// TopLevelGroupID is the reserved group id for relay-wide
	// discussion outside any named group.
	TopLevelGroupID = "_"

	// GroupIDPattern documents the accepted group id syntax. Validation
	// uses a byte table rather than a regexp.
	GroupIDPattern = `^[a-z0-9_-]+$`

	// groupIDDelimiter separates the relay URL from the group id in
	// the combined identifier.
	groupIDDelimiter = "'"

	// hexKeyLength is the length of a hex-encoded 32-byte public key
	// or event ID.
	hexKeyLength = 64
)

// groupIDChars is the set of bytes permitted in a group id: a-z, 0-9,
// '-' and '_'.
var groupIDChars [256]bool

// lowerHexChars is the set of bytes permitted in hex-encoded keys and
// event IDs.
var lowerHexChars [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		groupIDChars[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		groupIDChars[c] = true
		lowerHexChars[c] = true
	}
	groupIDChars['-'] = true
	groupIDChars['_'] = true
	for c := byte('a'); c <= 'f'; c++ {
		lowerHexChars[c] = true
	}
}

// validGroupID reports whether id is non-empty and every byte is in
// the group id alphabet. Multi-byte UTF-8 sequences always fail since
// none of their bytes are in the table.
func validGroupID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if !groupIDChars[id[i]] {
			return false
		}
	}
	return true
}

// isLowerHex32 reports whether s is exactly 64 lowercase hex characters.
func isLowerHex32(s string) bool {
	if len(s) != hexKeyLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !lowerHexChars[s[i]] {
			return false
		}
	}
	return true
}
