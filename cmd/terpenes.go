package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/terpdex/terpdex/internal/terpenes"
)

var terpenesCmd = &cobra.Command{
	Use:     "terpenes",
	Aliases: []string{"ref"},
	Short:   "Browse the terpene reference",
}

var terpenesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all terpenes with one field per row",
	RunE: func(cmd *cobra.Command, args []string) error {
		field, _ := cmd.Flags().GetString("field")
		info, ok := terpenes.LookupMode(field)
		if !ok || info.ID == terpenes.ModeRandom {
			return fmt.Errorf("unknown field %q", field)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-14s  %s\n", "Terpene", info.Label)
		fmt.Fprintln(w, strings.Repeat("─", 80))

		all := terpenes.Builtin()
		for _, t := range all {
			val := fieldText(t, info.ID)
			if len(val) > 64 {
				val = val[:61] + "..."
			}
			fmt.Fprintf(w, "%-14s  %s\n", t.Name, val)
		}

		fmt.Fprintf(w, "\n%d terpenes\n", len(all))
		return nil
	},
}

var terpenesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show every field for one terpene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var found *terpenes.Terpene
		for _, t := range terpenes.Builtin() {
			if strings.EqualFold(t.Name, args[0]) {
				found = &t
				break
			}
		}
		if found == nil {
			return fmt.Errorf("no terpene named %q", args[0])
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "🌿 %s\n\n", found.Name)
		for _, m := range terpenes.Modes() {
			if m.ID == terpenes.ModeRandom {
				continue
			}
			fmt.Fprintf(w, "%s %s\n   %s\n", m.Icon, m.Label, strings.ReplaceAll(fieldText(*found, m.ID), "\n", "\n   "))
		}
		return nil
	},
}

// fieldText renders the whole field a mode asks about.
func fieldText(t terpenes.Terpene, m terpenes.Mode) string {
	switch m {
	case terpenes.ModeAroma:
		return t.Aroma
	case terpenes.ModeFeelings:
		return t.Feelings
	case terpenes.ModeTherapeutic:
		return t.Therapeutic
	case terpenes.ModeMenu:
		return strings.Join(t.MenuItems, "; ")
	case terpenes.ModeQuick:
		return t.QuickLine
	case terpenes.ModePairsBest:
		return t.PairsBest
	case terpenes.ModeHerbAnalogs:
		return t.HerbAnalogs
	}
	return ""
}

func init() {
	terpenesListCmd.Flags().String("field", "aroma", "Field to show: aroma, feelings, therapeutic, menu, quick, pairsBest, herbAnalogs")

	terpenesCmd.AddCommand(terpenesListCmd)
	terpenesCmd.AddCommand(terpenesShowCmd)
}
