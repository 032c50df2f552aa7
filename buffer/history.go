package buffer

type snapshot struct {
	lines  [][]rune
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{lines: cloneLines(b.lines), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = cloneLines(s.lines)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor, end := b.clampPos(s.sel.anchor), b.clampPos(s.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

func (b *Buffer) pushBounded(stack []snapshot, s snapshot) []snapshot {
	stack = append(stack, s)
	if limit := b.opt.HistoryLimit; len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) recordUndo(prev snapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.hist.undo = b.pushBounded(b.hist.undo, prev)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}
	cur := b.snapshot()
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)
	b.travel(cur, prev)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}
	cur := b.snapshot()
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]
	if b.opt.HistoryLimit > 0 {
		b.hist.undo = b.pushBounded(b.hist.undo, cur)
	}
	b.travel(cur, next)
	return true
}

func (b *Buffer) travel(from, to snapshot) {
	change := b.beginChange()
	b.restore(to)
	b.version++
	if applied, ok := wholeDocumentEdit(from.lines, to.lines); ok {
		change.add(applied)
	}
	b.commitChange(change)
}

func cloneLines(lines [][]rune) [][]rune {
	out := make([][]rune, len(lines))
	for i, l := range lines {
		out[i] = append([]rune(nil), l...)
	}
	return out
}
