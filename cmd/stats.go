package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/levels"
	"github.com/terpdex/terpdex/internal/progress"
	"github.com/terpdex/terpdex/internal/terpenes"
	"github.com/terpdex/terpdex/internal/ui/components"
	"github.com/terpdex/terpdex/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level and progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		snap := s.game.Snapshot()
		rows := statsRows(snap.Progress, s.game.Catalog())
		w := cmd.OutOrStdout()

		if !isTTY(w) {
			for _, r := range rows {
				fmt.Fprintf(w, "%-14s %s\n", r[0], r[1])
			}
			writeTopTerpenes(w, snap.Progress, 5)
			return nil
		}

		var b strings.Builder
		b.WriteString(theme.Title.Render("🌿 terpdex stats"))
		b.WriteString("\n\n")
		b.WriteString(components.NewLevelBar(snap.Level(), 50).View())
		b.WriteString("\n\n")
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(14)
		for _, r := range rows {
			b.WriteString(label.Render(r[0]) + " " + theme.Body.Render(r[1]) + "\n")
		}
		var top strings.Builder
		writeTopTerpenes(&top, snap.Progress, 5)
		b.WriteString(top.String())

		fmt.Fprintln(w, theme.Card.Render(b.String()))
		return nil
	},
}

func statsRows(st progress.State, catalog []achievements.Definition) [][2]string {
	info := levels.Resolve(st.XP)
	next := "max level"
	if !info.IsMax() {
		next = fmt.Sprintf("%d to %s", info.XPToNext, info.Next.Title)
	}
	done, total := achievements.Progress(catalog, st.Achievements)
	lastPlayed := "never"
	if st.LastPlayed != nil {
		lastPlayed = st.LastPlayed.Local().Format(time.DateTime)
	}
	return [][2]string{
		{"Level", fmt.Sprintf("%d %s", info.Current.Level, info.Current.Title)},
		{"XP", fmt.Sprintf("%d (%s)", st.XP, next)},
		{"Best streak", fmt.Sprint(st.BestStreak)},
		{"Correct", fmt.Sprint(st.TotalCorrect)},
		{"Modes tried", fmt.Sprintf("%d / %d", st.ModesUsed.Len(), len(terpenes.Modes()))},
		{"Achievements", fmt.Sprintf("%d / %d", done, total)},
		{"Last played", lastPlayed},
	}
}

// writeTopTerpenes lists the n terpenes with the most correct answers.
func writeTopTerpenes(w io.Writer, st progress.State, n int) {
	type row struct {
		name  string
		count int
	}
	var rows []row
	for name, c := range st.TopicCorrect {
		rows = append(rows, row{name, c})
	}
	if len(rows) == 0 {
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].name < rows[j].name
	})
	if len(rows) > n {
		rows = rows[:n]
	}

	fmt.Fprintln(w, "\nTop terpenes")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-14s %d\n", r.name, r.count)
	}
}

// isTTY reports whether w is an interactive terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
