package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/strands/buffer"
	"github.com/iw2rmb/strands/internal/grapheme"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelected
	cellCursor
)

func (m *Model) renderContent() string {
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = len(strconv.Itoa(m.buf.LineCount()))
	}

	out := make([]string, m.buf.LineCount())
	for row := range out {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			num := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				num = m.cfg.Style.LineNumActive
			}
			sb.WriteString(num.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		cursorCol := -1
		if m.focused && row == cursor.Row {
			cursorCol = cursor.Col
		}
		from, to := selectionCols(sel, selOK, row, len(m.buf.Line(row)))
		sb.WriteString(m.renderLine(m.buf.Line(row), cursorCol, from, to))
		out[row] = sb.String()
	}
	return strings.Join(out, "\n")
}

// renderLine styles runs of equally-styled cells together. A cursor past the
// last rune is drawn as a blank cell.
func (m *Model) renderLine(line []rune, cursorCol, selFrom, selTo int) string {
	st := m.cfg.Style
	var (
		sb   strings.Builder
		run  strings.Builder
		kind = cellText
		cell int
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(styleFor(st, kind).Render(run.String()))
		run.Reset()
	}
	for col, r := range line {
		k := cellText
		switch {
		case col == cursorCol:
			k = cellCursor
		case col >= selFrom && col < selTo:
			k = cellSelected
		}
		if k != kind {
			flush()
			kind = k
		}
		w := grapheme.RuneWidth(r, cell, m.cfg.TabWidth)
		if r == '\t' {
			run.WriteString(strings.Repeat(" ", w))
		} else {
			run.WriteRune(r)
		}
		cell += w
	}
	flush()
	if cursorCol == len(line) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func styleFor(st Style, k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return st.Cursor
	case cellSelected:
		return st.Selection
	}
	return st.Text
}

func selectionCols(sel buffer.Range, ok bool, row, lineLen int) (from, to int) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return -1, -1
	}
	from, to = 0, lineLen
	if row == sel.Start.Row {
		from = sel.Start.Col
	}
	if row == sel.End.Row {
		to = sel.End.Col
	}
	return from, to
}
