// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
)

// ReadSecretKeyFile reads a hex secret key from path. The file may end
// with a newline; any other content besides the 64 hex characters is
// an error. The key itself never appears in error messages.
func ReadSecretKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading secret key: %w", err)
	}
	key := bytes.TrimSpace(data)
	if len(key) != 64 {
		return "", fmt.Errorf("secret key in %s: expected 64 hex characters, got %d", path, len(key))
	}
	if _, err := hex.DecodeString(string(key)); err != nil {
		return "", fmt.Errorf("secret key in %s is not hex", path)
	}
	return string(bytes.ToLower(key)), nil
}
