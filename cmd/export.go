package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/terpdex/terpdex/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup of saved progress",
	Long: `Write saved progress as JSON, YAML or an Excel workbook.

The JSON and YAML documents embed the stored record in the same shape it
is persisted in, plus the resolved level and unlocked achievement details.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatVal, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		format, err := export.ParseFormat(formatVal)
		if err != nil {
			return err
		}

		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.adapter.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("read progress: %w", err)
		}
		now := time.Now()
		report := export.NewReport(rec, s.game.Catalog(), now)

		if output == "-" {
			return export.Write(cmd.OutOrStdout(), format, report)
		}
		if output == "" {
			output = export.DefaultFilename(format, now)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		if err := writeAndClose(f, format, report); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
		return nil
	},
}

func writeAndClose(f io.WriteCloser, format export.Format, report export.Report) error {
	if err := export.Write(f, format, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Output format: json, yaml or xlsx")
	exportCmd.Flags().StringP("output", "o", "", "Output file, or - for stdout (default terpene-flashcards-backup-DATE.<ext>)")
}
