package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"typeahead/internal/ui/autocomplete"
)

// keyMap holds the host-level bindings plus the focused instance's
type keyMap struct {
	NextInput key.Binding
	PrevInput key.Binding
	Destroy   key.Binding
	Quit      key.Binding

	instance autocomplete.KeyMap
}

func newKeyMap() keyMap {
	return keyMap{
		NextInput: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next input"),
		),
		PrevInput: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous input"),
		),
		Destroy: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "remove input"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		instance: autocomplete.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.instance.ShortHelp(), k.NextInput, k.Quit)
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.instance.ShortHelp(),
		{k.NextInput, k.PrevInput, k.Destroy, k.Quit},
	}
}
