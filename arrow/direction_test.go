package arrow

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirections_RowMajorWithoutCenter(t *testing.T) {
	var got [][2]int
	for d := range Directions() {
		dx, dy := d.Offset()
		got = append(got, [2]int{dx, dy})
	}
	assert.Equal(t, [][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}, got)
}

func TestSet(t *testing.T) {
	var s Set
	assert.Zero(t, s.Len())
	s = s.Add(East).Add(NorthWest).Add(East)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(East))
	assert.False(t, s.Has(West))
	assert.Equal(t, []Direction{NorthWest, East}, slices.Collect(s.All()))
	assert.Equal(t, "{NW,E}", s.String())
	assert.Equal(t, "?", Direction(9).String())
}
