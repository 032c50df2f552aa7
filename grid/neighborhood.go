package grid

import "github.com/iw2rmb/strands/letters"

// Row and column indices inside a Neighborhood.
const (
	Above = 0
	Mid   = 1
	Below = 2

	Prev    = 0
	Current = 1
	Next    = 2
)

// Neighborhood is the letter arrangement around one visualisation column.
// Cells are indexed [row][col]; letters.End marks an absent cell.
type Neighborhood struct {
	Line   int
	Column int
	Cells  [3][3]rune
}

// At returns the cell at row offset dy and column offset dx, both in
// {-1, 0, 1}. Offsets outside that range read as absent.
func (n Neighborhood) At(dy, dx int) rune {
	if dy < -1 || dy > 1 || dx < -1 || dx > 1 {
		return letters.End
	}
	return n.Cells[dy+1][dx+1]
}

// Center is the letter drawn at this column.
func (n Neighborhood) Center() rune { return n.Cells[Mid][Current] }

// Present reports whether the cell at (dy, dx) holds a letter.
func (n Neighborhood) Present(dy, dx int) bool {
	return n.At(dy, dx) != letters.End
}

func (n Neighborhood) String() string {
	var b []rune
	for i, row := range n.Cells {
		if i > 0 {
			b = append(b, '/')
		}
		for _, c := range row {
			if c == letters.End {
				c = '.'
			}
			b = append(b, c)
		}
	}
	return string(b)
}
