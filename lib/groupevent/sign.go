// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package groupevent

import (
	"errors"
	"fmt"

	"github.com/nbd-wtf/go-nostr"
)

// Sign fills in the event's PubKey, ID, and Sig from secretKey (64 hex
// characters). The event must not be modified afterwards.
func Sign(event *nostr.Event, secretKey string) error {
	publicKey, err := nostr.GetPublicKey(secretKey)
	if err != nil {
		return fmt.Errorf("deriving public key: %w", err)
	}
	event.PubKey = publicKey
	if err := event.Sign(secretKey); err != nil {
		return fmt.Errorf("signing %d event: %w", event.Kind, err)
	}
	return nil
}

// Verify checks that the event's ID matches its content and that Sig is
// a valid signature by PubKey.
func Verify(event nostr.Event) error {
	if event.ID != event.GetID() {
		return errors.New("event ID does not match the serialized event")
	}
	valid, err := event.CheckSignature()
	if err != nil {
		return fmt.Errorf("checking signature: %w", err)
	}
	if !valid {
		return errors.New("signature does not verify against the event's public key")
	}
	return nil
}
