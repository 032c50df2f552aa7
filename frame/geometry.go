package frame

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/iw2rmb/strands/arrow"
)

// Geometry places cells on a plane, in pixels.
type Geometry struct {
	// LetterGap is the distance between neighbouring letter centres.
	LetterGap float64
	// ArrowGap separates an arrow from the glyph box it starts at.
	ArrowGap float64
	// FontSize is the glyph em size; it also sizes the glyph box.
	FontSize float64
	// HeadLength is the length of each arrowhead stroke before scaling by
	// √½.
	HeadLength float64
}

func DefaultGeometry() Geometry {
	return Geometry{LetterGap: 50, ArrowGap: 3, FontSize: 30, HeadLength: 7}
}

// Center is the centre of the glyph of c.
func (g Geometry) Center(c Cell) vec.Vec2 {
	return vec.Vec2{
		X: float64(c.Column+1) * g.LetterGap,
		Y: float64(c.Line+1) * g.LetterGap,
	}
}

// Size is the canvas extent needed for f, with one gap of margin on every
// side.
func (g Geometry) Size(f Frame) (width, height float64) {
	return float64(f.Columns+1) * g.LetterGap, float64(f.Lines+1) * g.LetterGap
}

// Arrow returns where the arrow of c toward d starts and the vector of its
// shaft. Arrows start just outside the glyph box and stop short of the
// neighbouring box so that opposing arrows do not touch.
func (g Geometry) Arrow(c Cell, d arrow.Direction) (start, shaft vec.Vec2) {
	dx, dy := d.Offset()
	dir := vec.Vec2{X: float64(dx), Y: float64(dy)}
	start = g.Center(c).Add(dir.Mul(g.FontSize/2 + g.ArrowGap))
	shaft = dir.Mul(g.LetterGap - g.FontSize - 2*g.ArrowGap)
	return start, shaft
}

// Head returns the two arrowhead strokes that start at the tip of a shaft.
func (g Geometry) Head(shaft vec.Vec2) [2]vec.Vec2 {
	length := shaft.Length()
	if length == 0 {
		return [2]vec.Vec2{}
	}
	n := shaft.Mul(1 / length)
	scale := math.Sqrt(0.5) * g.HeadLength
	var out [2]vec.Vec2
	for i, sign := range [2]float64{-1, 1} {
		out[i] = vec.Vec2{
			X: scale * -(n.X + sign*n.Y),
			Y: scale * (sign*n.X - n.Y),
		}
	}
	return out
}
