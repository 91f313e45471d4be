// Package util provides shared utility functions used across the codebase.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Truncate shortens s to at most maxWidth visual columns, ending with an
// ellipsis when cut. ANSI escape codes and wide characters are measured by
// their display width, so styled text can be passed in.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return Ellipsis
	}
	// ansi.Truncate counts the tail toward maxWidth
	return ansi.Truncate(s, maxWidth, Ellipsis)
}
