package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/terpdex/terpdex/internal/ui/layout"
)

type keyMap struct {
	Navigate key.Binding
	Select   key.Binding
	Toggle   key.Binding
	Quit     key.Binding
	Answer   key.Binding
	Back     key.Binding
	Flip     key.Binding
	Knew     key.Binding
	Missed   key.Binding
	Skip     key.Binding
	Continue key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑↓", "Navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Quiz/Flashcards"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("Q", "Quit"),
		),
		Answer: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "a", "b", "c", "d"),
			key.WithHelp("1-4", "Answer"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Modes"),
		),
		Flip: key.NewBinding(
			key.WithKeys("space", " ", "enter", "f"),
			key.WithHelp("Space", "Flip"),
		),
		Knew: key.NewBinding(
			key.WithKeys("y", "1"),
			key.WithHelp("Y", "Got it"),
		),
		Missed: key.NewBinding(
			key.WithKeys("n", "2"),
			key.WithHelp("N", "Missed it"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s", "right"),
			key.WithHelp("S", "Skip"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("Enter", "Next"),
		),
	}
}

// hints converts bindings to footer hints.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
