// Package frame turns a whole document into draw intents: one Cell per
// letter, each carrying the arrows to stroke around it. Renderers consume a
// Frame and never see the model or the scanner.
package frame

import (
	"cmp"
	"slices"

	"github.com/iw2rmb/strands/arrow"
	"github.com/iw2rmb/strands/grid"
)

// Cell is the draw intent for one letter.
type Cell struct {
	Line     int
	Column   int
	Letter   rune
	Arrows   arrow.Set
	Strength [arrow.Count]float64
}

// Frame is the complete set of intents for one redraw.
type Frame struct {
	// Cells are ordered by line, then column.
	Cells []Cell
	// Lines is the number of document lines, including lines without
	// letters.
	Lines int
	// Columns is the widest line in letters.
	Columns int
	// Threshold is the value the arrows were decided against.
	Threshold float64
	// Peak is the largest arrow strength in the frame, used to normalise
	// colour ramps.
	Peak float64
}

// Plan rescans every line of doc and decides the arrows of every letter.
func Plan(doc grid.Document, f arrow.Frequencies, threshold float64) Frame {
	fr := Frame{Threshold: threshold}
	if doc == nil {
		return fr
	}
	fr.Lines = doc.LineCount()
	for _, seq := range grid.ScanAll(doc) {
		for n := range seq {
			d := arrow.Decide(n, f, threshold)
			fr.Cells = append(fr.Cells, Cell{
				Line:     n.Line,
				Column:   n.Column,
				Letter:   d.Center,
				Arrows:   d.Arrows,
				Strength: d.Strength,
			})
			fr.Columns = max(fr.Columns, n.Column+1)
			for dir := range d.Arrows.All() {
				fr.Peak = max(fr.Peak, d.Strength[dir])
			}
		}
	}
	return fr
}

// ArrowCount is the total number of arrows in the frame.
func (f Frame) ArrowCount() int {
	n := 0
	for _, c := range f.Cells {
		n += c.Arrows.Len()
	}
	return n
}

// Line returns the cells of one line in column order. The result aliases
// f.Cells.
func (f Frame) Line(line int) []Cell {
	start, _ := slices.BinarySearchFunc(f.Cells, line, func(c Cell, l int) int {
		return cmp.Compare(c.Line, l)
	})
	end := start
	for end < len(f.Cells) && f.Cells[end].Line == line {
		end++
	}
	return f.Cells[start:end]
}
