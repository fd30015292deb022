// Package app frames the study screen with the header and footer and runs
// the Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/terpdex/terpdex/internal/game"
	"github.com/terpdex/terpdex/internal/screen"
	"github.com/terpdex/terpdex/internal/screens/quiz"
	"github.com/terpdex/terpdex/internal/terpenes"
	"github.com/terpdex/terpdex/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	screen screen.Screen
	game   *game.Game
	width  int
	height int
}

func newAppModel(g *game.Game, s screen.Screen) AppModel {
	return AppModel{
		screen: s,
		game:   g,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	snap := m.game.Snapshot()
	header := layout.RenderHeader(m.screen.Title(), layout.HeaderStats{
		Level:  snap.Level().Current.Level,
		XP:     snap.Progress.XP,
		Streak: snap.Session.CurrentStreak,
	}, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if p, ok := m.screen.(screen.KeyHintProvider); ok {
		if h := p.KeyHints(); len(h) > 0 {
			footerHints = h
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.screen.View(m.width, layout.ContentHeight(m.height, header, footer))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program on the study screen.
func Run(g *game.Game, deck *terpenes.Deck, opts quiz.Options) error {
	p := tea.NewProgram(newAppModel(g, quiz.New(g, deck, opts)))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
