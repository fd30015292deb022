package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a study session",
	Long: `Start the terminal study screen.

Without --mode the mode menu opens first. Quiz asks multiple-choice
questions; flashcard shows a card to flip and self-grade.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		study, _ := cmd.Flags().GetString("study")
		mode, _ := cmd.Flags().GetString("mode")
		if !cmd.Flags().Changed("study") {
			study = cfg.Play.StudyType
		}
		return runApp(cmd, study, mode)
	},
}

func init() {
	playCmd.Flags().String("study", "quiz", "Study type: quiz or flashcard")
	playCmd.Flags().String("mode", "", "Start directly in a mode (random, aroma, feelings, therapeutic, menu, quick, pairsBest, herbAnalogs)")
}
