// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	"github.com/bureau-foundation/relaygroups/lib/schema/group"
)

func TestTablePlain(t *testing.T) {
	styles := NewStyles(DefaultTheme, false)
	got := styles.Table(
		[]string{"KIND", "NAME", "CATEGORY"},
		[][]Cell{
			{{Text: "9000"}, {Text: "put-user"}, {Text: "moderation", Color: DefaultTheme.CategoryModeration}},
			{{Text: "39000"}, {Text: "group-metadata"}, {Text: "metadata"}},
		},
	)
	want := "" +
		"KIND    NAME             CATEGORY\n" +
		"9000    put-user         moderation\n" +
		"39000   group-metadata   metadata\n"
	if got != want {
		t.Errorf("Table() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDisabledStylesArePlain(t *testing.T) {
	styles := NewStyles(DefaultTheme, false)
	if got := styles.Header("x"); got != "x" {
		t.Errorf("Header = %q", got)
	}
	if got := styles.Color("x", DefaultTheme.Fail); got != "x" {
		t.Errorf("Color = %q", got)
	}
	if got := styles.Faint("x"); got != "x" {
		t.Errorf("Faint = %q", got)
	}
}

func TestCategoryColor(t *testing.T) {
	tests := map[group.Category]string{
		group.CategoryModeration: string(DefaultTheme.CategoryModeration),
		group.CategoryMetadata:   string(DefaultTheme.CategoryMetadata),
		group.CategoryUser:       string(DefaultTheme.CategoryUser),
		group.CategoryNone:       string(DefaultTheme.FaintText),
	}
	for category, want := range tests {
		if got := string(DefaultTheme.CategoryColor(category)); got != want {
			t.Errorf("CategoryColor(%s) = %s, want %s", category, got, want)
		}
	}
	if DefaultTheme.CategoryModeration == DefaultTheme.CategoryMetadata ||
		DefaultTheme.CategoryMetadata == DefaultTheme.CategoryUser {
		t.Error("categories share a color")
	}
}
