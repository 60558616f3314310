package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the watch screen's key bindings.
type keyMap struct {
	Copy key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy viewport name"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
