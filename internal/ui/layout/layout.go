// Package layout draws the terpdex frame: header bar, footer key hints and
// the content area between them.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/terpdex/terpdex/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below either of these the content area is drawn compact.
	CompactWidth  = 100
	CompactHeight = 28
)

// Density is how much decoration the content area has room for.
type Density int

const (
	Roomy Density = iota
	Compact
)

// DensityFor picks the density for a content area of the given size.
func DensityFor(width, height int) Density {
	if width < CompactWidth || height < CompactHeight {
		return Compact
	}
	return Roomy
}

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the playable size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the rows left for content once header and footer
// are drawn.
func ContentHeight(totalHeight int, header, footer string) int {
	return max(totalHeight-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nThe flashcards need at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// HeaderStats is the progress summary shown on the right of the header.
type HeaderStats struct {
	Level  int
	XP     int
	Streak int
}

func (s HeaderStats) render() string {
	sep := lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ")
	accent := lipgloss.NewStyle().Foreground(theme.Accent)
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("Lv %d", s.Level)) +
		sep + accent.Render(fmt.Sprintf("✦ %d XP", s.XP)) +
		sep + accent.Render(fmt.Sprintf("🔥 %d", s.Streak))
}

// RenderHeader draws the app name on the left, the screen title centered
// and the player's stats on the right.
func RenderHeader(title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  terpdex")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := stats.render()

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return theme.Header.Width(width).Render(
		left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter draws the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return theme.Footer.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the terminal height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(height, header, footer)).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
