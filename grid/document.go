package grid

import "strings"

// Document is the read-only view of a text buffer needed for scanning.
// Line must return the runes of line i without the line terminator; callers
// do not modify the returned slice.
type Document interface {
	LineCount() int
	Line(i int) []rune
}

// Lines adapts a slice of strings to Document.
type Lines []string

// SplitLines splits text on "\n". A trailing "\r" stays on its line and is
// treated as a line end by the scanner.
func SplitLines(text string) Lines {
	return Lines(strings.Split(text, "\n"))
}

func (l Lines) LineCount() int { return len(l) }

func (l Lines) Line(i int) []rune {
	if i < 0 || i >= len(l) {
		return nil
	}
	return []rune(l[i])
}
