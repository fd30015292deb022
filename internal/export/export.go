// Package export writes progress backups and reports.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/levels"
	"github.com/terpdex/terpdex/internal/persist"
	"github.com/terpdex/terpdex/internal/progress"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts json, yaml/yml and xlsx, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json, yaml or xlsx)", s)
	}
}

// Extension returns the file extension for f, with the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// AchievementRow is one unlocked achievement.
type AchievementRow struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// TopicRow is one terpene's correct count.
type TopicRow struct {
	Topic   string `json:"topic" yaml:"topic"`
	Correct int    `json:"correct" yaml:"correct"`
}

// Report is the exported document.
type Report struct {
	GeneratedAt  time.Time        `json:"generatedAt" yaml:"generatedAt"`
	Record       persist.Record   `json:"record" yaml:"record"`
	Level        levels.Info      `json:"level" yaml:"level"`
	Unlocked     int              `json:"unlocked" yaml:"unlocked"`
	Available    int              `json:"available" yaml:"available"`
	Achievements []AchievementRow `json:"achievements" yaml:"achievements"`
	Topics       []TopicRow       `json:"topics" yaml:"topics"`
}

// NewReport builds a report from a stored record. Achievements follow
// catalog order; ids missing from the catalog are listed last by id.
func NewReport(rec persist.Record, catalog []achievements.Definition, now time.Time) Report {
	unlocked := progress.NewSet(rec.Achievements...)

	rows := make([]AchievementRow, 0, unlocked.Len())
	known := map[string]bool{}
	for _, d := range catalog {
		known[d.ID] = true
		if unlocked.Has(d.ID) {
			rows = append(rows, AchievementRow{ID: d.ID, Title: d.Title, Description: d.Description})
		}
	}
	for _, id := range unlocked.Slice() {
		if !known[id] {
			rows = append(rows, AchievementRow{ID: id, Title: id})
		}
	}

	topics := make([]TopicRow, 0, len(rec.TerpeneCorrect))
	for name, n := range rec.TerpeneCorrect {
		topics = append(topics, TopicRow{Topic: name, Correct: n})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Correct != topics[j].Correct {
			return topics[i].Correct > topics[j].Correct
		}
		return topics[i].Topic < topics[j].Topic
	})

	done, total := achievements.Progress(catalog, unlocked)
	return Report{
		GeneratedAt:  now.UTC(),
		Record:       rec,
		Level:        levels.Resolve(rec.XP),
		Unlocked:     done,
		Available:    total,
		Achievements: rows,
		Topics:       topics,
	}
}

// Write encodes r to w in format f.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatXLSX:
		return writeXLSX(w, r)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// DefaultFilename returns a dated backup filename.
func DefaultFilename(f Format, now time.Time) string {
	return "terpene-flashcards-backup-" + now.Format("2006-01-02") + f.Extension()
}
