// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a string that may contain
// ANSI escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, ending with an ellipsis
// when anything was cut. A one-column budget yields only the ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// Center pads s with spaces on both sides to width columns, truncating first
// if it does not fit. Odd padding goes to the right.
func Center(s string, width int) string {
	s = Truncate(s, width)
	pad := width - VisualWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Cells splits s into one entry per terminal column. A wide rune fills its
// first column; the columns it covers after that hold "".
func Cells(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if len(out) > 0 {
				out[len(out)-1] += string(r)
			}
			continue
		}
		out = append(out, string(r))
		for i := 1; i < w; i++ {
			out = append(out, "")
		}
	}
	return out
}
