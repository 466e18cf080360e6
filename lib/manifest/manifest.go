// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/relaygroups/lib/ref"
	"github.com/bureau-foundation/relaygroups/lib/schema/group"
)

// Format is a manifest serialization format.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSONC Format = "jsonc"
)

// FormatFromPath chooses the format from a file extension: .jsonc and
// .json are JSONC, everything else is YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc", ".json":
		return FormatJSONC
	default:
		return FormatYAML
	}
}

// Document is the raw, unvalidated form of a manifest. Every field is
// optional at this stage.
type Document struct {
	Group    string      `yaml:"group" json:"group"`
	Metadata MetadataDoc `yaml:"metadata" json:"metadata"`
	Roles    []RoleDoc   `yaml:"roles" json:"roles"`
	Admins   []AdminDoc  `yaml:"admins" json:"admins"`
	Members  []string    `yaml:"members" json:"members"`
}

// MetadataDoc is the raw metadata section. Empty Privacy and Closed
// select the defaults (public, open).
type MetadataDoc struct {
	Name    *string `yaml:"name" json:"name"`
	About   *string `yaml:"about" json:"about"`
	Picture string  `yaml:"picture" json:"picture"`
	Privacy string  `yaml:"privacy" json:"privacy"`
	Closed  string  `yaml:"closed" json:"closed"`
}

// RoleDoc is one raw role definition.
type RoleDoc struct {
	Name        string  `yaml:"name" json:"name"`
	Description *string `yaml:"description" json:"description"`
}

// AdminDoc is one raw admin entry.
type AdminDoc struct {
	PublicKey string   `yaml:"pubkey" json:"pubkey"`
	Roles     []string `yaml:"roles" json:"roles"`
}

// Manifest is a fully validated group description.
type Manifest struct {
	// Group is the zero value when the manifest has no group field.
	Group    ref.GroupID
	Metadata group.GroupMetadata
	Roles    group.GroupRoles
	Admins   group.GroupAdmins
	Members  group.GroupMembers
}

// Decode parses data in the given format into a Document. Unknown
// fields are rejected so typos do not silently drop data.
func Decode(data []byte, format Format) (*Document, error) {
	var document Document
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		// An empty file is an empty manifest.
		if err := decoder.Decode(&document); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing manifest YAML: %w", err)
		}
	case FormatJSONC:
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&document); err != nil {
			return nil, fmt.Errorf("parsing manifest JSONC: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown manifest format %q", format)
	}
	return &document, nil
}

// Parse decodes and resolves data in one step.
func Parse(data []byte, format Format) (*Manifest, error) {
	document, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return document.Resolve()
}

// ReadFile reads and resolves the manifest at path, choosing the
// format from the extension.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	result, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Resolve validates every field of the document. The returned error
// wraps the underlying grouperr or ref error and names the field path
// (e.g. "admins[1].pubkey").
func (d *Document) Resolve() (*Manifest, error) {
	var result Manifest

	if d.Group != "" {
		groupID, err := ref.ParseGroupID(d.Group)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		result.Group = groupID
	}

	metadata, err := d.Metadata.Resolve()
	if err != nil {
		return nil, fmt.Errorf("metadata.%w", err)
	}
	result.Metadata = metadata

	roles := make([]group.Role, 0, len(d.Roles))
	for i, role := range d.Roles {
		if role.Name == "" {
			return nil, fmt.Errorf("roles[%d].name: required", i)
		}
		if role.Description != nil {
			roles = append(roles, group.NewRoleWithDescription(role.Name, *role.Description))
		} else {
			roles = append(roles, group.NewRole(role.Name))
		}
	}
	result.Roles = group.NewGroupRoles(roles...)

	admins := make([]group.GroupAdmin, 0, len(d.Admins))
	for i, admin := range d.Admins {
		publicKey, err := ref.ParsePublicKey(admin.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("admins[%d].pubkey: %w", i, err)
		}
		admins = append(admins, group.GroupAdmin{PublicKey: publicKey, Roles: admin.Roles})
	}
	result.Admins = group.NewGroupAdmins(admins...)

	members := make([]ref.PublicKey, 0, len(d.Members))
	for i, member := range d.Members {
		publicKey, err := ref.ParsePublicKey(member)
		if err != nil {
			return nil, fmt.Errorf("members[%d]: %w", i, err)
		}
		members = append(members, publicKey)
	}
	result.Members = group.NewGroupMembers(members...)

	return &result, nil
}

// Resolve validates the metadata section. Errors are prefixed with the
// field name so Document.Resolve can add the section.
func (m MetadataDoc) Resolve() (group.GroupMetadata, error) {
	metadata := group.GroupMetadata{Name: m.Name, About: m.About}

	if m.Picture != "" {
		picture, err := ref.ParseURL(m.Picture)
		if err != nil {
			return group.GroupMetadata{}, fmt.Errorf("picture: %w", err)
		}
		metadata.Picture = picture
	}
	if m.Privacy != "" {
		privacy, err := group.ParsePrivacy(m.Privacy)
		if err != nil {
			return group.GroupMetadata{}, fmt.Errorf("privacy: %w", err)
		}
		metadata.Privacy = privacy
	}
	if m.Closed != "" {
		access, err := group.ParseAccessModel(m.Closed)
		if err != nil {
			return group.GroupMetadata{}, fmt.Errorf("closed: %w", err)
		}
		metadata.Closed = access
	}
	return metadata, nil
}
