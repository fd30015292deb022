package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/terpdex/terpdex/internal/engine"
	"github.com/terpdex/terpdex/internal/terpenes"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Record a graded answer without the TUI",
	Long: `Record one or more graded answers for a terpene and print the result.

Each invocation is a new session, so streaks and combos start from zero
while XP, achievements and per-terpene counts carry over.`,
	Example: `  terpdex answer --topic Myrcene --correct
  terpdex answer --topic Pinene --wrong
  terpdex answer --topic Limonene --correct --times 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		correct, _ := cmd.Flags().GetBool("correct")
		times, _ := cmd.Flags().GetInt("times")
		if times < 1 {
			return fmt.Errorf("--times must be at least 1")
		}

		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if topic != "" {
			deck, err := terpenes.NewDeck(terpenes.Builtin())
			if err != nil {
				return err
			}
			if _, ok := deck.Lookup(topic); !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: %q is not a built-in terpene; recording it anyway\n", topic)
			}
		}

		w := cmd.OutOrStdout()
		for range times {
			out := s.game.Answer(cmd.Context(), correct, topic)
			if err := s.game.LastSaveError(); err != nil {
				return fmt.Errorf("save progress: %w", err)
			}
			printOutcome(w, out)
		}
		return nil
	},
}

func init() {
	answerCmd.Flags().String("topic", "", "Terpene the answer was about")
	answerCmd.Flags().Bool("correct", false, "The answer was correct")
	answerCmd.Flags().Bool("wrong", false, "The answer was wrong")
	answerCmd.Flags().Int("times", 1, "Repeat the answer this many times in one session")
	answerCmd.MarkFlagsMutuallyExclusive("correct", "wrong")
	answerCmd.MarkFlagsOneRequired("correct", "wrong")
}

// printOutcome writes a short report of one transition.
func printOutcome(w io.Writer, out engine.Outcome) {
	snap := out.Snapshot
	if out.XPGained > 0 {
		fmt.Fprintf(w, "✓ +%d XP (total %d)  streak %d  combo %d\n",
			out.XPGained, snap.Progress.XP, snap.Session.CurrentStreak, snap.Session.Combo)
	} else if snap.Session.Count > 0 && snap.Session.CurrentStreak == 0 {
		fmt.Fprintf(w, "✗ streak reset (total %d XP)\n", snap.Progress.XP)
	}
	for _, m := range []string{out.StreakMessage, out.ComboMessage} {
		if m != "" {
			fmt.Fprintln(w, "  "+m)
		}
	}
	if out.LeveledUp {
		fmt.Fprintf(w, "⬆ Level up! Lv %d %s\n", out.Level.Current.Level, out.Level.Current.Title)
	}
	for _, d := range out.Unlocked {
		fmt.Fprintf(w, "🏆 Achievement unlocked: %s (%s)\n", d.Title, d.Description)
	}
}
