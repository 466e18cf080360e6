// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package conformance

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/nbd-wtf/go-nostr"
	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/relaygroups/lib/grouperr"
	"github.com/bureau-foundation/relaygroups/lib/manifest"
)

//go:embed vectors.jsonc
var embeddedVectors []byte

// Codec names accepted in Vector.Codec.
const (
	CodecMetadata = "metadata"
	CodecRoles    = "roles"
	CodecAdmins   = "admins"
	CodecMembers  = "members"
	CodecGroup    = "group"
)

// Vector is one conformance case.
type Vector struct {
	Name string `json:"name"`

	// Codec selects which part of the resolved manifest is checked.
	Codec string `json:"codec"`

	// Manifest is the input. Only the section named by Codec matters.
	Manifest manifest.Document `json:"manifest"`

	// Tags is the expected tag list for the tag codecs.
	Tags [][]string `json:"tags,omitempty"`

	// Canonical is the expected canonical identifier for the group
	// codec.
	Canonical string `json:"canonical,omitempty"`

	// Error, when set, is the grouperr kind name (e.g. "InvalidPrivacy")
	// that resolving the manifest must fail with.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of checking one vector.
type Result struct {
	Vector Vector

	// Digest is the digest of the produced tag list. Zero for error
	// vectors and the group codec.
	Digest Hash

	// Err is nil when the vector passed.
	Err error
}

// Passed reports whether the vector passed.
func (r Result) Passed() bool { return r.Err == nil }

// LoadVectors returns the embedded vectors.
func LoadVectors() ([]Vector, error) {
	return ParseVectors(embeddedVectors)
}

// ParseVectors parses a JSONC vector file.
func ParseVectors(data []byte) ([]Vector, error) {
	var vectors []Vector
	if err := json.Unmarshal(jsonc.ToJSON(data), &vectors); err != nil {
		return nil, fmt.Errorf("parsing conformance vectors: %w", err)
	}
	for i, vector := range vectors {
		if vector.Name == "" {
			return nil, fmt.Errorf("conformance vector %d has no name", i)
		}
	}
	return vectors, nil
}

// Check runs the vector and returns the produced tag list's digest.
// The error describes the first mismatch.
func (v Vector) Check() (Hash, error) {
	resolved, err := v.Manifest.Resolve()
	if v.Error != "" {
		if err == nil {
			return Hash{}, fmt.Errorf("expected %s error, resolved successfully", v.Error)
		}
		if got := grouperr.KindOf(err); got.String() != v.Error {
			return Hash{}, fmt.Errorf("expected %s error, got %v", v.Error, err)
		}
		return Hash{}, nil
	}
	if err != nil {
		return Hash{}, fmt.Errorf("resolving manifest: %w", err)
	}

	var tags nostr.Tags
	switch v.Codec {
	case CodecGroup:
		if got := resolved.Group.String(); got != v.Canonical {
			return Hash{}, fmt.Errorf("canonical form %q, want %q", got, v.Canonical)
		}
		return Hash{}, nil
	case CodecMetadata:
		tags = resolved.Metadata.Tags()
	case CodecRoles:
		tags = resolved.Roles.Tags()
	case CodecAdmins:
		tags = resolved.Admins.Tags()
	case CodecMembers:
		tags = resolved.Members.Tags()
	default:
		return Hash{}, fmt.Errorf("unknown codec %q", v.Codec)
	}

	if err := compareTags(tags, v.Tags); err != nil {
		return Hash{}, err
	}
	return Digest(tags)
}

// compareTags reports the first position where got and want differ.
func compareTags(got nostr.Tags, want [][]string) error {
	for i := range min(len(got), len(want)) {
		if !slices.Equal([]string(got[i]), want[i]) {
			return fmt.Errorf("tag %d: got %q, want %q", i, []string(got[i]), want[i])
		}
	}
	if len(got) != len(want) {
		return fmt.Errorf("got %d tags, want %d", len(got), len(want))
	}
	return nil
}

// RunAll checks every vector in order.
func RunAll(vectors []Vector) []Result {
	results := make([]Result, len(vectors))
	for i, vector := range vectors {
		digest, err := vector.Check()
		results[i] = Result{Vector: vector, Digest: digest, Err: err}
	}
	return results
}
