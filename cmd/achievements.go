package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/ui/theme"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show the achievement gallery",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		unlocked := s.game.Snapshot().Progress.Achievements
		catalog := s.game.Catalog()
		done, total := achievements.Progress(catalog, unlocked)

		w := cmd.OutOrStdout()
		tty := isTTY(w)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)

		for _, d := range catalog {
			mark, line := "[ ]", fmt.Sprintf("%s  %s", d.Title, d.Description)
			if unlocked.Has(d.ID) {
				mark = "[x]"
			}
			if tty {
				if unlocked.Has(d.ID) {
					line = theme.Correct.Render(line)
				} else {
					line = dim.Render(line)
				}
			}
			fmt.Fprintf(w, "%s %s\n", mark, line)
		}
		fmt.Fprintf(w, "\n%d / %d unlocked\n", done, total)
		return nil
	},
}
