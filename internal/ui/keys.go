package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit        key.Binding
	Next        key.Binding
	Previous    key.Binding
	ScrollDown  key.Binding
	ScrollUp    key.Binding
	ToggleDock  key.Binding
	TogglePopup key.Binding
	Backspace   key.Binding
	DeleteWord  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+e", "ctrl+c"),
			key.WithHelp("ctrl+e", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("ctrl+j", "down"),
			key.WithHelp("ctrl+j", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("ctrl+k", "up"),
			key.WithHelp("ctrl+k", "prev"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "scroll up"),
		),
		ToggleDock: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "dock"),
		),
		TogglePopup: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "popup"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete"),
		),
		DeleteWord: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "delete word"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.ScrollDown, k.ScrollUp, k.ToggleDock, k.TogglePopup, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.ScrollDown, k.ScrollUp},
		{k.ToggleDock, k.TogglePopup, k.Backspace, k.DeleteWord, k.Quit},
	}
}

func isControlKey(msg tea.KeyMsg) bool {
	return strings.HasPrefix(msg.String(), "ctrl+")
}
