package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terpdex/terpdex/internal/terpenes"
)

var modeCmd = &cobra.Command{
	Use:   "mode <id>",
	Short: "Record a study mode selection without the TUI",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var ids []string
		for _, m := range terpenes.Modes() {
			ids = append(ids, string(m.ID))
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		info, ok := terpenes.LookupMode(args[0])
		if !ok {
			return fmt.Errorf("unknown mode %q", args[0])
		}

		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		out := s.game.SelectMode(cmd.Context(), string(info.ID))
		if err := s.game.LastSaveError(); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s selected (%d of %d modes tried)\n",
			info.Icon, info.Label, out.Snapshot.Progress.ModesUsed.Len(), len(terpenes.Modes()))
		printOutcome(w, out)
		return nil
	},
}
