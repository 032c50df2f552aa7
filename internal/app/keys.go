package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/strands/editor"
)

// KeyMap holds the session-level bindings. Everything else goes to the
// editor.
type KeyMap struct {
	Load, Clear, Export  key.Binding
	FineUp, FineDown     key.Binding
	CoarseUp, CoarseDown key.Binding
	Cancel               key.Binding
	Help, Quit           key.Binding

	Editor editor.KeyMap
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Load:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "load corpus")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear model")),
		Export: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export png")),

		FineUp:     key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "more arrows")),
		FineDown:   key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "fewer arrows")),
		CoarseUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "more arrows ×32")),
		CoarseDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "fewer arrows ×32")),

		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		Editor: editor.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Load, k.Clear, k.Export, k.FineUp, k.FineDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{
		{k.Load, k.Clear, k.Export, k.Quit},
		{k.FineUp, k.FineDown, k.CoarseUp, k.CoarseDown},
	}, k.Editor.FullHelp()...)
}
