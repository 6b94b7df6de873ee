package components

import "charm.land/bubbles/v2/key"

// Shared navigation bindings for list-like components.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	KeyConfirm = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "select"),
	)
)
