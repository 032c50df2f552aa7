// Package grapheme measures text in terminal cells.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells s occupies. Clusters that
// runewidth reports as zero-width fall back to uniseg's estimate.
func Width(s string) int {
	if s == "" {
		return 0
	}
	w := runewidth.StringWidth(s)
	if w <= 0 {
		w = max(uniseg.StringWidth(s), 0)
	}
	return w
}

// RuneWidth is Width for a single rune, with tabs advancing to the next
// multiple of tabWidth from col.
func RuneWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - col%tabWidth
	}
	return runewidth.RuneWidth(r)
}

// Pad centers s in a field of width cells. Text wider than the field is
// returned unchanged.
func Pad(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Count returns the number of user-perceived characters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
