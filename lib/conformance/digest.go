// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"encoding/hex"
	"fmt"

	"github.com/nbd-wtf/go-nostr"
	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/relaygroups/lib/codec"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// String returns the lowercase hex form of the hash.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// IsZero reports whether h is all zero bytes.
func (h Hash) IsZero() bool { return h == Hash{} }

// tagListDomainKey is the ASCII string "relaygroups tag list v1",
// zero-padded to the 32 bytes BLAKE3 keyed mode requires. Changing it
// invalidates every published digest.
var tagListDomainKey = [32]byte{
	'r', 'e', 'l', 'a', 'y', 'g', 'r', 'o', 'u', 'p', 's', ' ',
	't', 'a', 'g', ' ', 'l', 'i', 's', 't', ' ', 'v', '1',
	0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest returns the tag-list-domain BLAKE3 keyed hash of the CBOR
// encoding of tags. A nil list and an empty list encode differently
// (CBOR null vs empty array) and so have different digests; the codecs
// never return nil.
func Digest(tags nostr.Tags) (Hash, error) {
	data, err := codec.Marshal(tags)
	if err != nil {
		return Hash{}, fmt.Errorf("encoding tag list: %w", err)
	}
	return keyedHash(data), nil
}

func keyedHash(data []byte) Hash {
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(tagListDomainKey[:])
	if err != nil {
		panic("conformance: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}
