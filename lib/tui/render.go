// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles applies a Theme, or nothing when disabled.
type Styles struct {
	Theme   Theme
	Enabled bool
}

// NewStyles returns Styles for theme. When enabled is false every
// method returns its input unchanged.
func NewStyles(theme Theme, enabled bool) Styles {
	return Styles{Theme: theme, Enabled: enabled}
}

// Color renders text in the given foreground color.
func (s Styles) Color(text string, color lipgloss.Color) string {
	if !s.Enabled || color == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// Header renders text as a bold header.
func (s Styles) Header(text string) string {
	if !s.Enabled {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(s.Theme.HeaderForeground).Render(text)
}

// Faint renders secondary text.
func (s Styles) Faint(text string) string {
	return s.Color(text, s.Theme.FaintText)
}

// Cell is one table cell. An empty Color uses the normal text style.
type Cell struct {
	Text  string
	Color lipgloss.Color
}

// Table renders headers and rows as left-aligned columns separated by
// three spaces, one line per row, with a trailing newline. Column
// widths are measured on the plain text, so styled and unstyled output
// line up identically.
func (s Styles) Table(headers []string, rows [][]Cell) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell.Text))
			}
		}
	}

	var builder strings.Builder
	writeRow := func(texts []string, render func(i int, padded string) string) {
		for i, text := range texts {
			if i >= len(widths) {
				break
			}
			last := i == len(texts)-1 || i == len(widths)-1
			padded := text
			if !last {
				padded += strings.Repeat(" ", widths[i]-lipgloss.Width(text))
			}
			builder.WriteString(render(i, padded))
			if !last {
				builder.WriteString("   ")
			}
		}
		builder.WriteByte('\n')
	}

	writeRow(headers, func(_ int, padded string) string { return s.Header(padded) })
	for _, row := range rows {
		texts := make([]string, len(row))
		for i, cell := range row {
			texts[i] = cell.Text
		}
		writeRow(texts, func(i int, padded string) string { return s.Color(padded, row[i].Color) })
	}
	return builder.String()
}
