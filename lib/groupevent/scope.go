// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package groupevent

import (
	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/lib/grouperr"
	"github.com/bureau-foundation/relaygroups/lib/ref"
	"github.com/bureau-foundation/relaygroups/lib/schema/group"
)

// GroupFromEvent returns the group event is scoped to on relay. The id
// is read from the first "d" tag for addressable metadata kinds and
// from the first "h" tag otherwise.
//
// Fails with grouperr.MissingRequiredTag (message: the tag name) when
// the tag is absent or has no value, and with grouperr.InvalidGroupID
// when the value is not a valid group id.
func GroupFromEvent(relay ref.URL, event nostr.Event) (ref.GroupID, error) {
	name := group.TagGroup
	if kind, ok := group.KindFromInt(event.Kind); ok && kind.IsAddressable() {
		name = group.TagIdentifier
	}

	value, found := firstTagValue(event.Tags, name)
	if !found {
		return ref.GroupID{}, grouperr.New(grouperr.MissingRequiredTag, "%s", name)
	}
	return ref.NewGroupID(relay, value)
}

// firstTagValue returns the second element of the first tag named
// name that has one.
func firstTagValue(tags nostr.Tags, name string) (string, bool) {
	for _, tag := range tags {
		if len(tag) >= 2 && tag[0] == name {
			return tag[1], true
		}
	}
	return "", false
}
