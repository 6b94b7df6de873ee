package play

import "charm.land/bubbles/v2/key"

var (
	keySelect = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "answer"),
	)
	keyPick = key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "pick"),
	)
	keyNext = key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("N", "next"),
	)
	keyFinish = key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("F", "finish"),
	)
)
