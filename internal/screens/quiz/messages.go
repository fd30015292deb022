package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/terpdex/terpdex/internal/terpenes"
)

// modeChosenMsg is sent when a mode is picked from the menu.
type modeChosenMsg struct {
	Mode terpenes.Mode
}

// feedbackDoneMsg ends the feedback pause for question Seq.
type feedbackDoneMsg struct {
	Seq int
}

// xpToastDoneMsg hides the XP toast shown as Seq.
type xpToastDoneMsg struct {
	Seq int
}

// achievementToastDoneMsg hides the achievement toast shown as Seq.
type achievementToastDoneMsg struct {
	Seq int
}

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
