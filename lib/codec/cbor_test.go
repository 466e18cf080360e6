// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/nbd-wtf/go-nostr"

	"github.com/bureau-foundation/relaygroups/lib/ref"
)

func TestMarshalTagList(t *testing.T) {
	tags := nostr.Tags{{"privacy", "public"}}

	data, err := Marshal(tags)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// [["privacy", "public"]]: array(1), array(2), text(7) "privacy",
	// text(6) "public".
	want := "81" + "82" + "67" + hex.EncodeToString([]byte("privacy")) +
		"66" + hex.EncodeToString([]byte("public"))
	if got := hex.EncodeToString(data); got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var decoded nostr.Tags
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 1 || len(decoded[0]) != 2 || decoded[0][1] != "public" {
		t.Errorf("Unmarshal = %q", decoded)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{
		"zeta":  1,
		"alpha": []string{"a", "b"},
		"mid":   map[string]int{"y": 2, "x": 1},
	}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for range 20 {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("non-deterministic output: %x vs %x", first, again)
		}
	}
}

func TestTextMarshalerEncodesAsString(t *testing.T) {
	groupID := ref.MustParseGroupID("wss://relay.example.com'pizza-lovers")

	data, err := Marshal(groupID)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var text string
	if err := Unmarshal(data, &text); err != nil {
		t.Fatalf("Unmarshal as string: %v (the group ID did not encode as a text string)", err)
	}
	if text != "wss://relay.example.com'pizza-lovers" {
		t.Errorf("encoded text = %q", text)
	}

	var decoded ref.GroupID
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal GroupID: %v", err)
	}
	if decoded != groupID {
		t.Errorf("round trip = %v, want %v", decoded, groupID)
	}
}

func TestTextUnmarshalerValidates(t *testing.T) {
	data, err := Marshal("wss://relay.example.com'Bad ID")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded ref.GroupID
	if err := Unmarshal(data, &decoded); err == nil {
		t.Errorf("Unmarshal accepted an invalid group ID: %v", decoded)
	}
}

func TestEncoderMatchesMarshal(t *testing.T) {
	tags := nostr.Tags{{"role", "admin", "Administrator"}, {"role", "moderator"}}

	want, err := Marshal(tags)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var buffer bytes.Buffer
	if err := NewEncoder(&buffer).Encode(tags); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(buffer.Bytes(), want) {
		t.Errorf("Encoder output %x differs from Marshal %x", buffer.Bytes(), want)
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(nostr.Tags{{"p", "ab"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diagnostic != `[["p", "ab"]]` {
		t.Errorf("Diagnose = %s", diagnostic)
	}
}
