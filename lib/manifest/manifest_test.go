// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bureau-foundation/relaygroups/lib/grouperr"
	"github.com/bureau-foundation/relaygroups/lib/schema/group"
	"github.com/bureau-foundation/relaygroups/lib/testutil"
)

func TestParseYAML(t *testing.T) {
	admin := testutil.PublicKeyHex(t, 1)
	member := testutil.PublicKeyHex(t, 2)

	data := fmt.Sprintf(`
group: "wss://relay.example.com'pizza-lovers"
metadata:
  name: Pizza Lovers
  about: We like pizza
  picture: https://example.com/pizza.png
  privacy: Private
  closed: closed
roles:
  - name: admin
    description: Can do everything
  - name: moderator
admins:
  - pubkey: %s
    roles: [admin, moderator]
members:
  - %s
  - %s
`, admin, admin, member)

	result, err := Parse([]byte(data), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := result.Group.String(); got != "wss://relay.example.com'pizza-lovers" {
		t.Errorf("Group = %q", got)
	}
	if result.Metadata.Name == nil || *result.Metadata.Name != "Pizza Lovers" {
		t.Errorf("Metadata.Name = %v", result.Metadata.Name)
	}
	if result.Metadata.Privacy != group.PrivacyPrivate || result.Metadata.Closed != group.AccessClosed {
		t.Errorf("Metadata privacy/closed = %v/%v", result.Metadata.Privacy, result.Metadata.Closed)
	}
	if got := result.Metadata.Picture.String(); got != "https://example.com/pizza.png" {
		t.Errorf("Metadata.Picture = %q", got)
	}
	if result.Roles.Len() != 2 {
		t.Errorf("Roles.Len() = %d, want 2", result.Roles.Len())
	}
	if roles := result.Roles.Roles(); roles[0].Description == nil || roles[1].Description != nil {
		t.Errorf("role descriptions = %v, %v", roles[0].Description, roles[1].Description)
	}
	if got := result.Admins.Tags(); len(got) != 3 {
		t.Errorf("Admins.Tags() = %q, want p + 2 roles", got)
	}
	if result.Members.Len() != 2 {
		t.Errorf("Members.Len() = %d, want 2", result.Members.Len())
	}
}

func TestResolvePreservesOrderAndOwnsRoles(t *testing.T) {
	var document Document
	var want []string
	for scalar := uint64(1); scalar <= 20; scalar++ {
		key := testutil.PublicKeyHex(t, scalar)
		document.Members = append(document.Members, key)
		want = append(want, key)
	}
	roles := []string{"admin"}
	document.Admins = []AdminDoc{{PublicKey: want[0], Roles: roles}}

	result, err := document.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	roles[0] = "mutated"

	members := result.Members.Tags()
	if len(members) != len(want) {
		t.Fatalf("Members.Tags() has %d tags, want %d", len(members), len(want))
	}
	for i, tag := range members {
		if tag[1] != want[i] {
			t.Errorf("member %d = %s, want %s", i, tag[1], want[i])
		}
	}
	if got := result.Admins.Tags()[1][1]; got != "admin" {
		t.Errorf("admin role = %q after mutating the document", got)
	}
}

func TestParseJSONC(t *testing.T) {
	data := fmt.Sprintf(`{
  // comments and trailing commas are allowed
  "group": "wss://relay.example.com'_",
  "metadata": {"name": "Top", "closed": "OPEN",},
  "members": [%q,],
}`, testutil.PublicKeyHex(t, 3))

	result, err := Parse([]byte(data), FormatJSONC)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !result.Group.IsTopLevel() {
		t.Errorf("Group %v is not top-level", result.Group)
	}
	if result.Metadata.Closed != group.AccessOpen {
		t.Errorf("Closed = %v", result.Metadata.Closed)
	}
	if result.Members.Len() != 1 {
		t.Errorf("Members.Len() = %d", result.Members.Len())
	}
}

func TestParseEmpty(t *testing.T) {
	result, err := Parse(nil, FormatYAML)
	if err != nil {
		t.Fatalf("Parse(empty): %v", err)
	}
	if !result.Group.IsZero() {
		t.Error("empty manifest has a group")
	}
	if got := len(result.Metadata.Tags()); got != 2 {
		t.Errorf("empty metadata has %d tags, want 2", got)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantKind  grouperr.Kind
		wantField string
	}{
		{
			name:      "bad group identifier",
			data:      `group: "no-delimiter"`,
			wantKind:  grouperr.InvalidGroupIdentifier,
			wantField: "group",
		},
		{
			name:      "bad group id characters",
			data:      `group: "wss://relay.example.com'Bad"`,
			wantKind:  grouperr.InvalidGroupID,
			wantField: "group",
		},
		{
			name:      "bad privacy",
			data:      "metadata:\n  privacy: secret",
			wantKind:  grouperr.InvalidPrivacy,
			wantField: "metadata.privacy",
		},
		{
			name:      "bad access model",
			data:      "metadata:\n  closed: ajar",
			wantKind:  grouperr.InvalidAccessModel,
			wantField: "metadata.closed",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.data), FormatYAML)
			if !errors.Is(err, test.wantKind) {
				t.Fatalf("error = %v, want %v", err, test.wantKind)
			}
			if !strings.HasPrefix(err.Error(), test.wantField+":") {
				t.Errorf("error %q does not start with %q", err, test.wantField)
			}
		})
	}
}

func TestResolveFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantField string
	}{
		{"bad picture", "metadata:\n  picture: not a url", "metadata.picture"},
		{"role without name", "roles:\n  - description: x", "roles[0].name"},
		{"bad admin key", "admins:\n  - pubkey: abc", "admins[0].pubkey"},
		{"bad member key", "members:\n  - " + strings.Repeat("A", 64), "members[0]"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.data), FormatYAML)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), test.wantField+":") {
				t.Errorf("error %q does not start with %q", err, test.wantField)
			}
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	if _, err := Decode([]byte("metadata:\n  picutre: x"), FormatYAML); err == nil {
		t.Error("YAML decode accepted an unknown field")
	}
	if _, err := Decode([]byte(`{"membres": []}`), FormatJSONC); err == nil {
		t.Error("JSONC decode accepted an unknown field")
	}
	if _, err := Decode(nil, Format("toml")); err == nil {
		t.Error("Decode accepted an unknown format")
	}
}

func TestReadFile(t *testing.T) {
	path := testutil.WriteTempFile(t, "group.jsonc", `{"group": "wss://relay.example.com'g"}`)
	result, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if result.Group.ID() != "g" {
		t.Errorf("Group.ID() = %q", result.Group.ID())
	}

	path = testutil.WriteTempFile(t, "broken.yaml", "metadata:\n  privacy: nope")
	_, err = ReadFile(path)
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("ReadFile error %v does not name the file", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"group.yaml":  FormatYAML,
		"group.yml":   FormatYAML,
		"group.jsonc": FormatJSONC,
		"group.JSON":  FormatJSONC,
		"group":       FormatYAML,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}
