// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package group

// Tag names. These are the first element of every tag the codecs and
// event builders emit.
const (
	TagName        = "name"
	TagDescription = "description"
	TagImage       = "image"
	TagPrivacy     = "privacy"
	TagClosed      = "closed"
	TagRole        = "role"
	TagPublicKey   = "p"

	// TagGroup scopes a regular event to a group: ["h", "<id>"].
	TagGroup = "h"
	// TagIdentifier scopes an addressable metadata event to a group:
	// ["d", "<id>"].
	TagIdentifier = "d"

	TagPrevious = "previous"
	TagEvent    = "e"
	TagCode     = "code"
)
