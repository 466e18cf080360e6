// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package group

import (
	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/lib/ref"
)

// GroupMetadata describes a group's public face. The zero value is a
// public, open group with no name, about text, or picture.
type GroupMetadata struct {
	// Name is the display name. Nil means absent; a pointer to "" is
	// present and emitted as an empty name tag.
	Name *string

	// About is the description text. Nil means absent.
	About *string

	// Picture is the image URL. The zero URL means absent.
	Picture ref.URL

	Privacy Privacy
	Closed  AccessModel
}

// WithName returns a copy of m with Name set.
func (m GroupMetadata) WithName(name string) GroupMetadata {
	m.Name = &name
	return m
}

// WithAbout returns a copy of m with About set.
func (m GroupMetadata) WithAbout(about string) GroupMetadata {
	m.About = &about
	return m
}

// WithPicture returns a copy of m with Picture set.
func (m GroupMetadata) WithPicture(picture ref.URL) GroupMetadata {
	m.Picture = picture
	return m
}

// WithPrivacy returns a copy of m with Privacy set.
func (m GroupMetadata) WithPrivacy(privacy Privacy) GroupMetadata {
	m.Privacy = privacy
	return m
}

// WithAccessModel returns a copy of m with Closed set.
func (m GroupMetadata) WithAccessModel(access AccessModel) GroupMetadata {
	m.Closed = access
	return m
}

// Tags encodes the metadata as a tag list. Order is fixed: name,
// description, image (each only when present), then privacy and
// closed, which are always emitted. The result has between 2 and 5
// tags.
func (m GroupMetadata) Tags() nostr.Tags {
	tags := make(nostr.Tags, 0, 5)
	if m.Name != nil {
		tags = append(tags, nostr.Tag{TagName, *m.Name})
	}
	if m.About != nil {
		tags = append(tags, nostr.Tag{TagDescription, *m.About})
	}
	if !m.Picture.IsZero() {
		tags = append(tags, nostr.Tag{TagImage, m.Picture.String()})
	}
	tags = append(tags,
		nostr.Tag{TagPrivacy, m.Privacy.String()},
		nostr.Tag{TagClosed, m.Closed.String()},
	)
	return tags
}
