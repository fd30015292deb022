package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/engine"
	"github.com/terpdex/terpdex/internal/terpenes"
	"github.com/terpdex/terpdex/internal/ui/components"
	"github.com/terpdex/terpdex/internal/ui/layout"
	"github.com/terpdex/terpdex/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	snap := s.game.Snapshot()
	cw := components.ContentWidth(width)
	d := layout.DensityFor(width, height)

	var body string
	if s.phase == phaseModeSelect {
		body = s.renderModeSelect(snap, cw, d)
	} else {
		body = s.renderPlay(snap, cw, d)
	}

	if toasts := s.renderToasts(d); toasts != "" {
		body += "\n\n" + toasts
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Render(body)
}

// levelBar drops the XP-to-next caption when space is tight.
func levelBar(snap engine.Snapshot, cw int, d layout.Density) string {
	bar := components.NewLevelBar(snap.Level(), cw)
	if d == layout.Compact {
		bar.Caption = ""
	}
	return bar.View()
}

func (s *Screen) renderModeSelect(snap engine.Snapshot, cw int, d layout.Density) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("🌿 Terpene Flashcards"))
	b.WriteString("\n")
	kind := "Quiz"
	if s.study == StudyFlashcard {
		kind = "Flashcards"
	}
	b.WriteString(theme.Subtitle.Width(cw).Render(fmt.Sprintf("Study type: %s  (Tab to switch)", kind)))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().Width(cw).Align(lipgloss.Left).Render(s.menu.View())
	b.WriteString(menu)
	b.WriteString("\n")

	b.WriteString(levelBar(snap, cw, d))
	b.WriteString("\n\n")

	done, total := achievements.Progress(s.game.Catalog(), snap.Progress.Achievements)
	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"Best streak %d · Correct %d · Achievements %d / %d",
		snap.Progress.BestStreak, snap.Progress.TotalCorrect, done, total)))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}
	return b.String()
}

func (s *Screen) renderPlay(snap engine.Snapshot, cw int, d layout.Density) string {
	var b strings.Builder

	sess := snap.Session
	stats := fmt.Sprintf("Score %d/%d   🔥 Streak %d   ⚡ Combo %d   Best %d",
		sess.Score, sess.Total, sess.CurrentStreak, sess.Combo, snap.Progress.BestStreak)
	if d == layout.Compact {
		stats = fmt.Sprintf("%d/%d  🔥 %d  ⚡ %d", sess.Score, sess.Total, sess.CurrentStreak, sess.Combo)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(stats))
	b.WriteString("\n")
	b.WriteString(levelBar(snap, cw, d))
	b.WriteString("\n\n")

	name := theme.Title.Render(s.question.Topic)
	var card string
	if s.study == StudyQuiz {
		mc := s.mc
		mc.Width = cw - 8
		card = name + "\n\n" + mc.View()
	} else {
		card = name + "\n\n" + theme.Body.Bold(true).Render(s.question.Prompt) + "\n\n"
		if s.phase == phaseReveal {
			card += lipgloss.NewStyle().Foreground(theme.Secondary).Render(revealText(s.question))
		} else {
			card += theme.Hint.Render("Press Space to reveal the answer")
		}
	}
	b.WriteString(components.Card(card, cw))
	b.WriteString("\n")

	switch s.phase {
	case phaseFeedback:
		b.WriteString("\n")
		if s.lastCorrect {
			b.WriteString(theme.Correct.Render("✅ Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("❌ Not quite. The answer was: " + s.question.Answer))
		}
	case phaseReveal:
		b.WriteString("\n")
		b.WriteString(components.ButtonRow(
			components.NewButton("Got it", "Y", true),
			components.NewButton("Missed it", "N", false),
			components.NewButton("Skip", "S", false),
		))
	}

	for _, m := range []string{s.streakMsg, s.comboMsg} {
		if m != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(m))
		}
	}
	return b.String()
}

// revealText is the flashcard back. It shows the whole field rather than
// the single item a quiz question samples.
func revealText(q terpenes.Question) string {
	t := q.Terpene
	switch q.Mode {
	case terpenes.ModeMenu:
		return "• " + strings.Join(t.MenuItems, "\n• ")
	case terpenes.ModeTherapeutic:
		return t.Therapeutic
	case terpenes.ModePairsBest:
		if combos := t.QuickCombos(); combos != "" {
			return t.Pairings() + "\n\nQuick combos: " + combos
		}
		return t.Pairings()
	case terpenes.ModeHerbAnalogs:
		return strings.Join(t.Herbs(), " · ")
	default:
		return q.Answer
	}
}

func (s *Screen) renderToasts(d layout.Density) string {
	var parts []string
	if s.xpToast > 0 {
		line := theme.XPToast.Render(fmt.Sprintf("+%d XP", s.xpToast))
		if s.levelUp != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("⬆ "+s.levelUp)
		}
		parts = append(parts, line)
	}
	if len(s.achQueue) > 0 {
		a := s.achQueue[0]
		if d == layout.Compact {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("🏆 "+a.Title))
			return strings.Join(parts, "\n")
		}
		parts = append(parts, theme.AchievementToast.Render(
			"🏆 Achievement Unlocked!\n"+a.Title+"\n"+
				lipgloss.NewStyle().Foreground(theme.TextDim).Bold(false).Render(a.Description)))
	}
	return strings.Join(parts, "\n\n")
}
