package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/terpdex/terpdex/internal/levels"
	"github.com/terpdex/terpdex/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	// Caption is rendered under the bar when set.
	Caption string
}

// NewLevelBar creates a bar for a resolved level.
func NewLevelBar(info levels.Info, width int) ProgressBar {
	label := fmt.Sprintf("Lv %d %s", info.Current.Level, info.Current.Title)
	caption := "Max level reached"
	if !info.IsMax() {
		caption = fmt.Sprintf("%d XP to %s", info.XPToNext, info.Next.Title)
	}
	return ProgressBar{
		Label:       label,
		Percent:     info.ProgressPercent / 100,
		ShowPercent: true,
		Width:       width,
		Caption:     caption,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	if p.Caption != "" {
		result += "\n" + theme.Hint.Render(p.Caption)
	}

	return result
}
