package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/trivia/internal/ui/layout"
)

// Common key bindings shared by the screens.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	)
	KeyEnter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	KeyQuit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// Hints converts enabled bindings into footer hints.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
