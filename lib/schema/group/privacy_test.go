// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package group

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/bureau-foundation/relaygroups/lib/grouperr"
)

func TestParsePrivacy(t *testing.T) {
	tests := []struct {
		input   string
		want    Privacy
		wantErr bool
	}{
		{input: "public", want: PrivacyPublic},
		{input: "private", want: PrivacyPrivate},
		{input: "PUBLIC", want: PrivacyPublic},
		{input: "Private", want: PrivacyPrivate},
		{input: "pRiVaTe", want: PrivacyPrivate},
		{input: "", wantErr: true},
		{input: "invalid", wantErr: true},
		{input: " public", wantErr: true},
		{input: "public\n", wantErr: true},
		{input: "open", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParsePrivacy(test.input)
		if test.wantErr {
			if !errors.Is(err, grouperr.InvalidPrivacy) {
				t.Errorf("ParsePrivacy(%q) error = %v, want InvalidPrivacy", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrivacy(%q) unexpected error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParsePrivacy(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestParsePrivacyCarriesInput(t *testing.T) {
	_, err := ParsePrivacy("Secret ")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "invalid privacy value: expected 'public' or 'private', got: Secret "
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestParseAccessModel(t *testing.T) {
	tests := []struct {
		input   string
		want    AccessModel
		wantErr bool
	}{
		{input: "open", want: AccessOpen},
		{input: "closed", want: AccessClosed},
		{input: "OPEN", want: AccessOpen},
		{input: "Closed", want: AccessClosed},
		{input: "", wantErr: true},
		{input: "invalid", wantErr: true},
		{input: "closed ", wantErr: true},
		{input: "public", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParseAccessModel(test.input)
		if test.wantErr {
			if !errors.Is(err, grouperr.InvalidAccessModel) {
				t.Errorf("ParseAccessModel(%q) error = %v, want InvalidAccessModel", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAccessModel(%q) unexpected error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseAccessModel(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestEnumDefaultsAndStrings(t *testing.T) {
	var privacy Privacy
	var access AccessModel
	if privacy != PrivacyPublic {
		t.Errorf("zero Privacy = %v, want public", privacy)
	}
	if access != AccessOpen {
		t.Errorf("zero AccessModel = %v, want open", access)
	}

	for value, want := range map[string]string{
		PrivacyPublic.String():  "public",
		PrivacyPrivate.String(): "private",
		AccessOpen.String():     "open",
		AccessClosed.String():   "closed",
	} {
		if value != want {
			t.Errorf("String() = %q, want %q", value, want)
		}
	}
}

func TestEnumTextRoundTrip(t *testing.T) {
	type wrapper struct {
		Privacy Privacy     `json:"privacy"`
		Closed  AccessModel `json:"closed"`
	}
	original := wrapper{Privacy: PrivacyPrivate, Closed: AccessClosed}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"privacy":"private","closed":"closed"}` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded wrapper
	if err := json.Unmarshal([]byte(`{"privacy":"PRIVATE","closed":"Closed"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("Unmarshal = %+v, want %+v", decoded, original)
	}

	if _, err := Privacy(7).MarshalText(); err == nil {
		t.Error("MarshalText of out-of-range Privacy succeeded")
	}
}
