package term

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/strands/arrow"
	"github.com/iw2rmb/strands/frame"
	"github.com/iw2rmb/strands/grid"
	"github.com/iw2rmb/strands/trigram"
)

func arrows(ds ...arrow.Direction) arrow.Set {
	var s arrow.Set
	for _, d := range ds {
		s = s.Add(d)
	}
	return s
}

func TestRender_PlainBlock(t *testing.T) {
	f := frame.Frame{
		Lines:   1,
		Columns: 1,
		Cells:   []frame.Cell{{Letter: 'A', Arrows: arrows(arrow.North, arrow.East, arrow.SouthWest)}},
	}
	got := Render(f, Options{Plain: true})
	assert.Equal(t, " ↑\n A→\n↙", got)
}

func TestRender_AllGlyphs(t *testing.T) {
	var all arrow.Set
	for d := range arrow.Directions() {
		all = all.Add(d)
	}
	f := frame.Frame{Lines: 1, Columns: 1, Cells: []frame.Cell{{Letter: 'X', Arrows: all}}}
	assert.Equal(t, "↖↑↗\n←X→\n↙↓↘", Render(f, Options{Plain: true}))
}

func TestRender_LinesStackInThrees(t *testing.T) {
	f := frame.Frame{
		Lines:   3,
		Columns: 2,
		Cells: []frame.Cell{
			{Line: 0, Column: 0, Letter: 'A'},
			{Line: 0, Column: 1, Letter: 'B', Arrows: arrows(arrow.West)},
			{Line: 2, Column: 0, Letter: 'C'},
		},
	}
	rows := strings.Split(Render(f, Options{Plain: true}), "\n")
	require.Len(t, rows, 9)
	assert.Equal(t, " A ←B", rows[1])
	assert.Equal(t, "", rows[4])
	assert.Equal(t, " C", rows[7])
}

func TestRender_WideLettersKeepColumnsAligned(t *testing.T) {
	f := frame.Frame{
		Lines:   2,
		Columns: 1,
		Cells: []frame.Cell{
			{Line: 0, Letter: 'テ', Arrows: arrows(arrow.South)},
			{Line: 1, Letter: 'A', Arrows: arrows(arrow.East)},
		},
	}
	rows := strings.Split(Render(f, Options{Plain: true}), "\n")
	require.Len(t, rows, 6)
	assert.Equal(t, " テ", rows[1])
	assert.Equal(t, " ↓", rows[2])
	assert.Equal(t, " A →", rows[4])
}

func TestRender_StyledRampFollowsStrength(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	weak := frame.Frame{Lines: 1, Columns: 1, Peak: 1,
		Cells: []frame.Cell{{Letter: 'A', Arrows: arrows(arrow.East)}}}
	strong := weak
	strong.Cells = []frame.Cell{{Letter: 'A', Arrows: arrows(arrow.East)}}
	strong.Cells[0].Strength[arrow.East] = 1

	a := Render(weak, Options{Renderer: r})
	b := Render(strong, Options{Renderer: r})
	assert.Contains(t, a, "\x1b[")
	assert.NotEqual(t, a, b)

	plain := Render(strong, Options{Renderer: r, Plain: true})
	assert.NotContains(t, plain, "\x1b")
}

func TestRender_FromPlannedFrame(t *testing.T) {
	m := trigram.New()
	_, err := m.Ingest(strings.NewReader("cat"))
	require.NoError(t, err)

	f := frame.Plan(grid.Lines{"cat"}, m, m.Threshold(1))
	got := Render(f, Options{Plain: true})
	assert.Equal(t, "\n C  A→ T\n", got)
}
