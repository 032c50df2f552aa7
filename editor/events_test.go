package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/strands/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if events[0].TextChanged {
		t.Fatalf("cursor move reported as text change")
	}
	if got := events[0].Cursor; got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("event cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(runes("X"))
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	ev := events[2]
	if !ev.TextChanged {
		t.Fatalf("insert not reported as text change")
	}
	if got := ev.Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if got := ev.TextVersion; got != m.Buffer().TextVersion() {
		t.Fatalf("event text version: got %d, want %d", got, m.Buffer().TextVersion())
	}
}

func TestOnChange_SelectionPayload(t *testing.T) {
	var last ChangeEvent
	m := New(Config{Text: "abc", OnChange: func(ev ChangeEvent) { last = ev }})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	_ = m
	if !last.Selection.Active {
		t.Fatalf("expected active selection")
	}
	want := buffer.Range{End: buffer.Pos{Col: 1}}
	if last.Selection.Range != want {
		t.Fatalf("selection: got %v, want %v", last.Selection.Range, want)
	}
}
