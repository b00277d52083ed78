package stackcards

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keyboard focus bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Jump  key.Binding
}

// DefaultKeyMap returns the default focus bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "down", "l", "j"),
			key.WithHelp("→/tab", "next card"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "up", "h", "k"),
			key.WithHelp("←/shift+tab", "previous card"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first card"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last card"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to card"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.First, k.Last, k.Jump},
	}
}
