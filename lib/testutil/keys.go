// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/lib/ref"
)

// TestRelay is the relay URL used throughout the test suite, in the
// form a user would type it (no trailing slash).
const TestRelay = "wss://relay.example.com"

// fatalfer is the subset of testing.TB the helpers need.
type fatalfer interface {
	Helper()
	Fatalf(format string, args ...any)
}

// SecretKey returns the hex secret key for scalar n. n must be
// non-zero; every small positive scalar is a valid secp256k1 key.
//
//	testutil.SecretKey(1) // "000...001"
func SecretKey(n uint64) string {
	if n == 0 {
		panic("testutil.SecretKey: scalar must be non-zero")
	}
	return fmt.Sprintf("%064x", n)
}

// PublicKeyHex returns the hex public key for scalar n.
func PublicKeyHex(t fatalfer, n uint64) string {
	t.Helper()
	publicKey, err := nostr.GetPublicKey(SecretKey(n))
	if err != nil {
		t.Fatalf("deriving public key %d: %v", n, err)
	}
	return publicKey
}

// PublicKey returns the validated public key for scalar n.
func PublicKey(t fatalfer, n uint64) ref.PublicKey {
	t.Helper()
	publicKey, err := ref.ParsePublicKey(PublicKeyHex(t, n))
	if err != nil {
		t.Fatalf("parsing public key %d: %v", n, err)
	}
	return publicKey
}

// Relay returns TestRelay parsed as a ref.URL.
func Relay(t fatalfer) ref.URL {
	t.Helper()
	relay, err := ref.ParseURL(TestRelay)
	if err != nil {
		t.Fatalf("parsing test relay: %v", err)
	}
	return relay
}

// GroupID returns the group id on TestRelay.
func GroupID(t fatalfer, id string) ref.GroupID {
	t.Helper()
	groupID, err := ref.NewGroupID(Relay(t), id)
	if err != nil {
		t.Fatalf("constructing group %q: %v", id, err)
	}
	return groupID
}
