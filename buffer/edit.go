package buffer

import "strings"

// InsertText inserts text at the cursor, or replaces the active selection.
// Carriage returns are folded into line breaks.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, normalizeNewlines(s))
}

func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. At the start of a line it joins
// the line with the previous one.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	case row > 0:
		b.edit(Range{Start: Pos{Row: row - 1, Col: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics. At the end of a line it joins
// the next line onto it.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < len(b.lines)-1:
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
	}
}

// edit replaces r with text as a single undoable step.
func (b *Buffer) edit(r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange()
	next, applied, changed := b.replaceRange(r, text)
	if !changed {
		if b.sel.active {
			b.sel = selectionState{}
			b.version++
			b.commitChange(change)
		}
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	change.add(applied)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (next Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textForRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	prefix := b.lines[r.Start.Row][:r.Start.Col]
	suffix := b.lines[r.End.Row][r.End.Col:]
	ins := splitLines(text)

	repl := make([][]rune, len(ins))
	for i, part := range ins {
		var line []rune
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, part...)
		if i == len(ins)-1 {
			next = Pos{Row: r.Start.Row + i, Col: len(line)}
			line = append(line, suffix...)
		}
		repl[i] = line
	}

	out := make([][]rune, 0, len(b.lines)-(r.End.Row-r.Start.Row)+len(repl)-1)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.lines = out

	return next, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: next},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func textForRange(lines [][]rune, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.Col
		} else {
			sb.WriteByte('\n')
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(string(lines[row][from:to]))
	}
	return sb.String()
}

func joinLines(lines [][]rune) string {
	return textForRange(lines, documentRange(lines))
}
