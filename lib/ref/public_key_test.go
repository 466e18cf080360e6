// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bureau-foundation/relaygroups/lib/ref"
	"github.com/bureau-foundation/relaygroups/lib/testutil"
)

func TestParsePublicKey(t *testing.T) {
	valid := testutil.PublicKeyHex(t, 1)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: valid},
		{name: "another valid", input: testutil.PublicKeyHex(t, 2)},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase", input: strings.ToUpper(valid), wantErr: true},
		{name: "too short", input: valid[:63], wantErr: true},
		{name: "too long", input: valid + "0", wantErr: true},
		{name: "non-hex", input: "zz" + valid[2:], wantErr: true},
		{name: "npub", input: "npub180cvv07tjdrrgpa0j7j7tmnyl2yr6yr7l8j4s3evf6u64th6gkwsyjh6w6", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key, err := ref.ParsePublicKey(test.input)
			if test.wantErr {
				if err == nil {
					t.Fatalf("ParsePublicKey(%q) = %v, want error", test.input, key)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePublicKey(%q) unexpected error: %v", test.input, err)
			}
			if key.String() != test.input {
				t.Errorf("String() = %q, want %q", key.String(), test.input)
			}
		})
	}
}

func TestPublicKeyKnownValue(t *testing.T) {
	// Scalar 1 maps to the generator point, whose x coordinate is fixed.
	const generatorX = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	if got := testutil.PublicKeyHex(t, 1); got != generatorX {
		t.Errorf("public key for scalar 1 = %q, want %q", got, generatorX)
	}
}

func TestPublicKeyTextRoundTrip(t *testing.T) {
	key := testutil.PublicKey(t, 3)

	data, err := json.Marshal(key)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded ref.PublicKey
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != key {
		t.Errorf("round trip = %v, want %v", decoded, key)
	}
	if decoded.Compare(key) != 0 {
		t.Errorf("Compare = %d, want 0", decoded.Compare(key))
	}
}
