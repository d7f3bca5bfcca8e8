package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/trivia/internal/ui/components"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Submit  key.Binding
	Abandon key.Binding
	Yes     key.Binding
	No      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:   components.KeyUp,
		Down: components.KeyDown,
		Choose: key.NewBinding(
			key.WithKeys("space", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("Space/1-9", "Choose"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Submit"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Quit game"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("Y", "Abandon"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("N", "Keep playing"),
		),
	}
}
