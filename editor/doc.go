// Package editor provides the Bubble Tea text editor pane that feeds the
// strands canvas. It owns a buffer.Buffer, maps keys onto buffer edits and
// renders the visible lines with an optional line-number gutter.
package editor
