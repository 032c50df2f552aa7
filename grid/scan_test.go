package grid

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/strands/letters"
)

func layouts(seq func(func(Neighborhood) bool)) []string {
	var out []string
	for n := range seq {
		out = append(out, n.String())
	}
	return out
}

func TestScan_SingleLineHasAbsentNeighbourRows(t *testing.T) {
	got := slices.Collect(Scan(SplitLines("cat"), 0))
	require.Len(t, got, 3)

	assert.Equal(t, []string{
		".../.CA/...",
		".../CAT/...",
		".../AT./...",
	}, layouts(Scan(SplitLines("cat"), 0)))

	for i, n := range got {
		assert.Equal(t, i, n.Column)
		assert.Equal(t, 0, n.Line)
		for dx := -1; dx <= 1; dx++ {
			assert.False(t, n.Present(-1, dx))
			assert.False(t, n.Present(1, dx))
		}
	}
	assert.Equal(t, 'C', got[0].Center())
	assert.Equal(t, 'A', got[0].At(0, 1))
	assert.Equal(t, letters.End, got[2].At(0, 1))
}

func TestScan_RowsAdvanceIndependently(t *testing.T) {
	doc := SplitLines("ab\ncde\nf")
	assert.Equal(t, []string{
		".AB/.CD/..F",
		"AB./CDE/.F.",
		"B../DE./F..",
	}, layouts(Scan(doc, 1)))
}

func TestScan_FirstAndLastLines(t *testing.T) {
	doc := SplitLines("ab\ncd")
	assert.Equal(t, []string{
		".../.AB/.CD",
		".../AB./CD.",
	}, layouts(Scan(doc, 0)))
	assert.Equal(t, []string{
		".AB/.CD/...",
		"AB./CD./...",
	}, layouts(Scan(doc, 1)))
}

func TestScan_SkipsNonLetters(t *testing.T) {
	assert.Equal(t, []string{
		".../.AB/...",
		".../AB./...",
	}, layouts(Scan(SplitLines("a, 1 b!"), 0)))
}

func TestScan_LineWithoutLettersIsEmpty(t *testing.T) {
	doc := SplitLines("abc\n 12 -- \nxyz")
	assert.Empty(t, layouts(Scan(doc, 1)))
	assert.Len(t, layouts(Scan(doc, 0)), 3, "an empty neighbour row reads as absent")
	assert.Equal(t, ".../.XY/...", layouts(Scan(doc, 2))[0])
}

func TestScan_CarriageReturnEndsLine(t *testing.T) {
	assert.Equal(t, []string{
		".../.AB/...",
		".../AB./...",
	}, layouts(Scan(SplitLines("ab\r"), 0)))
}

func TestScan_OutOfRange(t *testing.T) {
	doc := SplitLines("abc")
	assert.Empty(t, layouts(Scan(doc, -1)))
	assert.Empty(t, layouts(Scan(doc, 1)))
	assert.Empty(t, layouts(Scan(nil, 0)))
}

func TestScan_IsRestartable(t *testing.T) {
	seq := Scan(SplitLines("one\ntwo\nsix"), 1)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestScan_StopsWhenConsumerStops(t *testing.T) {
	n := 0
	for range Scan(SplitLines("abcdef"), 0) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestScan_ColumnCountMatchesLetters(t *testing.T) {
	doc := SplitLines("Ärger über 42 Öfen\nx")
	assert.Len(t, slices.Collect(Scan(doc, 0)), 13)
}

func TestScanAll(t *testing.T) {
	doc := SplitLines("ab\n\ncd")
	var lines []int
	counts := map[int]int{}
	for line, seq := range ScanAll(doc) {
		lines = append(lines, line)
		for range seq {
			counts[line]++
		}
	}
	assert.Equal(t, []int{0, 1, 2}, lines)
	assert.Equal(t, map[int]int{0: 2, 2: 2}, counts)
}

func TestNeighborhood_AtOutsideRangeIsAbsent(t *testing.T) {
	n := Neighborhood{}
	n.Cells[Mid][Current] = 'X'
	assert.Equal(t, 'X', n.At(0, 0))
	assert.Equal(t, letters.End, n.At(2, 0))
	assert.Equal(t, letters.End, n.At(0, -2))
}

func TestLines_LineOutOfRange(t *testing.T) {
	assert.Nil(t, Lines{"a"}.Line(3))
	assert.Equal(t, []rune("a"), Lines{"a"}.Line(0))
}
