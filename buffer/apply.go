package buffer

// Apply applies edits in order as one undoable step. Each range is read
// against the document as left by the previous edit and clamped into bounds.
// The cursor lands at the end of the last effective edit and any selection is
// cleared.
func (b *Buffer) Apply(edits ...TextEdit) {
	prev := b.snapshot()
	change := b.beginChange()
	cursor := b.cursor
	for _, e := range edits {
		next, applied, changed := b.replaceRange(e.Range, normalizeNewlines(e.Text))
		if !changed {
			continue
		}
		cursor = next
		change.add(applied)
	}
	if len(change.appliedEdits) == 0 {
		return
	}
	b.cursor = b.clampPos(cursor)
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
}
