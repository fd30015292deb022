package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary      = "Summary"
	sheetAchievements = "Achievements"
	sheetTopics       = "Terpenes"
)

func writeXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{sheetAchievements, sheetTopics} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	lastPlayed := ""
	if r.Record.LastPlayed != nil {
		lastPlayed = r.Record.LastPlayed.UTC().Format(time.RFC3339)
	}
	summary := [][]any{
		{"Field", "Value"},
		{"Level", r.Level.Current.Level},
		{"Title", r.Level.Current.Title},
		{"XP", r.Record.XP},
		{"XP to next level", r.Level.XPToNext},
		{"Best streak", r.Record.BestStreak},
		{"Total correct", r.Record.TotalCorrect},
		{"Modes used", len(r.Record.ModesUsed)},
		{"Achievements", fmt.Sprintf("%d / %d", r.Unlocked, r.Available)},
		{"Last played", lastPlayed},
		{"Generated", r.GeneratedAt.Format(time.RFC3339)},
	}
	if err := writeRows(f, sheetSummary, summary, bold); err != nil {
		return err
	}

	ach := [][]any{{"ID", "Title", "Description"}}
	for _, a := range r.Achievements {
		ach = append(ach, []any{a.ID, a.Title, a.Description})
	}
	if err := writeRows(f, sheetAchievements, ach, bold); err != nil {
		return err
	}

	topics := [][]any{{"Terpene", "Correct"}}
	for _, t := range r.Topics {
		topics = append(topics, []any{t.Topic, t.Correct})
	}
	if err := writeRows(f, sheetTopics, topics, bold); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// writeRows fills sheet from A1 and bolds the header row.
func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 24)
}
