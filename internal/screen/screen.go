// Package screen defines what the app frame needs from the screen it hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/terpdex/terpdex/internal/ui/layout"
)

// Screen is a framed, full-window view.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
