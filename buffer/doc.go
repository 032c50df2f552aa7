// Package buffer implements the editable text that strands visualises.
//
// Coordinates are 0-based (Row, Col) in runes. Ranges are half-open
// selections in document coordinates: [Start, End). A Buffer satisfies
// grid.Document, so the scanner reads its lines directly.
package buffer
