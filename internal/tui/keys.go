package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/roster/internal/config"
)

// keyMap holds the bindings of the roster window, built from the user's
// configured key mappings
type keyMap struct {
	Add     key.Binding
	Remove  key.Binding
	Search  key.Binding
	ShowAll key.Binding
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add: key.NewBinding(
			key.WithKeys(km.AddStudent),
			key.WithHelp(km.AddStudent, "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys(km.RemoveStudent),
			key.WithHelp(km.RemoveStudent, "remove"),
		),
		Search: key.NewBinding(
			key.WithKeys(km.SearchStudent),
			key.WithHelp(km.SearchStudent, "search"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys(km.ShowAll),
			key.WithHelp(km.ShowAll, "show all"),
		),
		Next: key.NewBinding(
			key.WithKeys(km.NextField),
			key.WithHelp(km.NextField, "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys(km.PrevField),
			key.WithHelp(km.PrevField, "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add / search"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "esc"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Add, k.Search, k.Remove, k.ShowAll, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Add, k.Search, k.Remove, k.ShowAll},
		{k.Next, k.Prev, k.Quit},
	}
}
