// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/relaygroups/lib/schema/group"
)

// Theme defines the color palette for relaygroups terminal output. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	HeaderForeground lipgloss.Color

	// Tag names in tag-list output ("p", "role", "privacy").
	TagName lipgloss.Color

	// Event kind categories.
	CategoryModeration lipgloss.Color
	CategoryMetadata   lipgloss.Color
	CategoryUser       lipgloss.Color

	Pass lipgloss.Color
	Fail lipgloss.Color
}

// CategoryColor returns the color for a kind category. Kinds outside
// the group catalog are FaintText.
func (theme Theme) CategoryColor(category group.Category) lipgloss.Color {
	switch category {
	case group.CategoryModeration:
		return theme.CategoryModeration
	case group.CategoryMetadata:
		return theme.CategoryMetadata
	case group.CategoryUser:
		return theme.CategoryUser
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	TagName:          lipgloss.Color("75"), // blue

	CategoryModeration: lipgloss.Color("208"), // orange
	CategoryMetadata:   lipgloss.Color("141"), // light purple
	CategoryUser:       lipgloss.Color("114"), // green

	Pass: lipgloss.Color("114"),
	Fail: lipgloss.Color("196"),
}
