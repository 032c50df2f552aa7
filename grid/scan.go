package grid

import (
	"iter"

	"github.com/iw2rmb/strands/letters"
)

type scanRow struct {
	cursor *letters.LineCursor
	window *letters.Window[rune]
}

func newScanRow(line []rune) *scanRow {
	r := &scanRow{
		cursor: letters.NewLineCursor(line),
		window: letters.NewWindow[rune](3),
	}
	r.advance()
	return r
}

func (r *scanRow) advance() { r.window.Push(r.cursor.Next()) }

func (r *scanRow) copyTo(dst *[3]rune) {
	for i := range dst {
		dst[i] = r.window.At(i)
	}
}

// Scan yields one Neighborhood per letter of the given line, left to right.
//
// The rows above and below take part only when they exist. Each row keeps a
// three-slot window that starts with one letter of lookahead; every column
// pulls one more letter into each window. A column is produced as long as
// the center line still had a letter waiting, so column k holds the
// (k-1)-th, k-th and (k+1)-th letters of each row.
//
// Scan keeps no state between calls; iterating the result twice rescans.
// An out-of-range line yields nothing.
func Scan(doc Document, line int) iter.Seq[Neighborhood] {
	return func(yield func(Neighborhood) bool) {
		if doc == nil || line < 0 || line >= doc.LineCount() {
			return
		}

		var rows [3]*scanRow
		for i := range rows {
			l := line + i - 1
			if l < 0 || l >= doc.LineCount() {
				continue
			}
			rows[i] = newScanRow(doc.Line(l))
		}

		center := rows[Mid]
		for column := 0; center.window.Newest() != letters.End; column++ {
			n := Neighborhood{Line: line, Column: column}
			for i, r := range rows {
				if r == nil {
					continue
				}
				r.advance()
				r.copyTo(&n.Cells[i])
			}
			if !yield(n) {
				return
			}
		}
	}
}

// ScanAll yields every line index of doc together with its Scan sequence.
func ScanAll(doc Document) iter.Seq2[int, iter.Seq[Neighborhood]] {
	return func(yield func(int, iter.Seq[Neighborhood]) bool) {
		if doc == nil {
			return
		}
		for line := range doc.LineCount() {
			if !yield(line, Scan(doc, line)) {
				return
			}
		}
	}
}
