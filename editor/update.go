package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/strands/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Pasted text is inserted literally and never matched against bindings.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.edit(func(b *buffer.Buffer) { b.InsertText(string(msg.Runes)) })
		return m
	}

	km := m.cfg.KeyMap
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}

	switch {
	case key.Matches(msg, km.Left):
		move(buffer.MoveRune, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveRune, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		move(buffer.MoveLine, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		move(buffer.MoveLine, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveRune, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveRune, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(buffer.MoveLine, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(buffer.MoveLine, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false)

	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(buffer.MoveDoc, buffer.DirEnd, false)

	case key.Matches(msg, km.Backspace):
		m.edit((*buffer.Buffer).DeleteBackward)
	case key.Matches(msg, km.Delete):
		m.edit((*buffer.Buffer).DeleteForward)
	case key.Matches(msg, km.Enter):
		m.edit((*buffer.Buffer).InsertNewline)

	case key.Matches(msg, km.Undo):
		m.edit(func(b *buffer.Buffer) { b.Undo() })
	case key.Matches(msg, km.Redo):
		m.edit(func(b *buffer.Buffer) { b.Redo() })

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.copySelection()
		m.edit((*buffer.Buffer).DeleteSelection)
	case key.Matches(msg, km.Paste):
		m.paste()

	case msg.Type == tea.KeyTab:
		m.edit(func(b *buffer.Buffer) { b.InsertRune('\t') })
	case msg.Type == tea.KeySpace:
		m.edit(func(b *buffer.Buffer) { b.InsertRune(' ') })
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.edit(func(b *buffer.Buffer) { b.InsertText(string(msg.Runes)) })
	}
	return m
}

func (m Model) edit(fn func(*buffer.Buffer)) {
	if m.cfg.ReadOnly {
		return
	}
	fn(m.buf)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.buf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) paste() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.edit(func(b *buffer.Buffer) { b.InsertText(s) })
}
