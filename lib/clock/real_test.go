// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "testing"

func TestFixed(t *testing.T) {
	c := Fixed(epoch)
	for range 3 {
		if got := c.Now(); !got.Equal(epoch) {
			t.Errorf("Now() = %v, want %v", got, epoch)
		}
	}
}
