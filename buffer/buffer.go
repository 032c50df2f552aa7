package buffer

import "strings"

type Options struct {
	// HistoryLimit bounds the undo stack. 0 means 1000; negative disables
	// history.
	HistoryLimit int
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds the document lines, cursor, selection and undo history.
//
// Version changes on every effective mutation, including cursor moves.
// TextVersion changes only when the text does, which is what a redraw of the
// visualisation keys on.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

// Text returns the document joined with "\n".
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// LineCount is the number of lines; an empty document has one empty line.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the runes of row i, or nil when i is out of range. The slice
// is owned by the buffer and must not be modified.
func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	change := b.beginChange()
	b.cursor = next
	b.version++
	b.commitChange(change)
}

// Selection returns the normalized active selection.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if NormalizeRange(clamped).IsEmpty() {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) {
		return
	}
	change := b.beginChange()
	b.sel = next
	b.version++
	b.commitChange(change)
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	change := b.beginChange()
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForRange(b.lines, r)
}

// SetText replaces the whole document as one undoable edit and moves the
// cursor to the start. The replacement and the cursor move are reported as
// a single Change.
func (b *Buffer) SetText(text string) {
	prev := b.snapshot()
	change := b.beginChange()
	_, applied, changed := b.replaceRange(documentRange(b.lines), normalizeNewlines(text))
	if !changed && b.cursor == (Pos{}) && !b.sel.active {
		return
	}
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.version++
	if changed {
		b.recordUndo(prev)
		change.add(applied)
	}
	b.commitChange(change)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// splitLines splits on "\n" after folding "\r\n" and lone "\r" into "\n".
func splitLines(text string) [][]rune {
	text = normalizeNewlines(text)
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
