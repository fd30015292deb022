package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/persist"
)

var now = time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC)

func sampleRecord() persist.Record {
	played := now.Add(-time.Hour)
	return persist.Record{
		XP:             1200,
		BestStreak:     11,
		TotalCorrect:   64,
		Achievements:   []string{"ten_correct", "first_correct", "retired_badge"},
		ModesUsed:      []string{"aroma", "menu"},
		TerpeneCorrect: map[string]int{"Pinene": 4, "Myrcene": 12, "Linalool": 4},
		LastPlayed:     &played,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xlsx", FormatXLSX, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewReport(t *testing.T) {
	r := NewReport(sampleRecord(), achievements.Catalog(), now)

	assert.Equal(t, 5, r.Level.Current.Level)
	assert.Equal(t, 2, r.Unlocked)
	assert.Equal(t, 16, r.Available)

	require.Len(t, r.Achievements, 3)
	assert.Equal(t, "first_correct", r.Achievements[0].ID)
	assert.Equal(t, "🌱 First Steps", r.Achievements[0].Title)
	assert.Equal(t, "ten_correct", r.Achievements[1].ID)
	assert.Equal(t, "retired_badge", r.Achievements[2].ID)

	assert.Equal(t, []TopicRow{
		{"Myrcene", 12}, {"Linalool", 4}, {"Pinene", 4},
	}, r.Topics)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, NewReport(sampleRecord(), achievements.Catalog(), now)))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	rec := doc["record"].(map[string]any)
	assert.Equal(t, float64(1200), rec["xp"])
	assert.Equal(t, float64(16), doc["available"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, NewReport(sampleRecord(), achievements.Catalog(), now)))

	var doc struct {
		Record struct {
			XP        int      `yaml:"xp"`
			ModesUsed []string `yaml:"modesUsed"`
		} `yaml:"record"`
		Level struct {
			Current struct {
				Title string `yaml:"title"`
			} `yaml:"currentLevel"`
		} `yaml:"level"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1200, doc.Record.XP)
	assert.Equal(t, []string{"aroma", "menu"}, doc.Record.ModesUsed)
	assert.Equal(t, "Budtender", doc.Level.Current.Title)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, NewReport(sampleRecord(), achievements.Catalog(), now)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Achievements", "Terpenes"}, f.GetSheetList())

	xp, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "1200", xp)

	rows, err := f.GetRows("Terpenes")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Myrcene", "12"}, rows[1])

	ach, err := f.GetRows("Achievements")
	require.NoError(t, err)
	assert.Len(t, ach, 4)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("pdf"), Report{}))
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "terpene-flashcards-backup-2024-06-09.yaml", DefaultFilename(FormatYAML, now))
}
