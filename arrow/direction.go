// Package arrow decides which of the eight neighbours of a letter deserve an
// arrow, given trigram frequencies and a threshold.
package arrow

import "iter"

// Direction is one of the eight outward compass directions, in row-major
// order of the 3×3 neighbourhood.
type Direction uint8

const (
	NorthWest Direction = iota
	North
	NorthEast
	West
	East
	SouthWest
	South
	SouthEast
)

// Count is the number of directions.
const Count = 8

var offsets = [Count][2]int{
	NorthWest: {-1, -1},
	North:     {0, -1},
	NorthEast: {1, -1},
	West:      {-1, 0},
	East:      {1, 0},
	SouthWest: {-1, 1},
	South:     {0, 1},
	SouthEast: {1, 1},
}

var names = [Count]string{"NW", "N", "NE", "W", "E", "SW", "S", "SE"}

// Offset returns the column and row offsets of d; y grows downward.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if int(d) >= Count {
		return "?"
	}
	return names[d]
}

// Directions iterates all eight directions in row-major order.
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := range Direction(Count) {
			if !yield(d) {
				return
			}
		}
	}
}
