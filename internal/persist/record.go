package persist

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/terpdex/terpdex/internal/progress"
	"github.com/terpdex/terpdex/internal/schema"
)

// Record is the stored shape of a progress.State.
type Record struct {
	XP             int            `json:"xp" yaml:"xp"`
	BestStreak     int            `json:"bestStreak" yaml:"bestStreak"`
	TotalCorrect   int            `json:"totalCorrect" yaml:"totalCorrect"`
	Achievements   []string       `json:"achievements" yaml:"achievements"`
	ModesUsed      []string       `json:"modesUsed" yaml:"modesUsed"`
	TerpeneCorrect map[string]int `json:"terpeneCorrect" yaml:"terpeneCorrect"`
	LastPlayed     *time.Time     `json:"lastPlayed" yaml:"lastPlayed"`
}

// FromState converts st to its stored shape. Id lists come out sorted.
func FromState(st progress.State) Record {
	tc := maps.Clone(st.TopicCorrect)
	if tc == nil {
		tc = map[string]int{}
	}
	var lp *time.Time
	if st.LastPlayed != nil {
		t := st.LastPlayed.UTC()
		lp = &t
	}
	return Record{
		XP:             st.XP,
		BestStreak:     st.BestStreak,
		TotalCorrect:   st.TotalCorrect,
		Achievements:   st.Achievements.Slice(),
		ModesUsed:      st.ModesUsed.Slice(),
		TerpeneCorrect: tc,
		LastPlayed:     lp,
	}
}

// State converts the record back, deduplicating the id lists.
func (r Record) State() progress.State {
	st := progress.State{
		XP:           r.XP,
		BestStreak:   r.BestStreak,
		TotalCorrect: r.TotalCorrect,
		Achievements: progress.NewSet(r.Achievements...),
		ModesUsed:    progress.NewSet(r.ModesUsed...),
		TopicCorrect: maps.Clone(r.TerpeneCorrect),
	}
	if st.TopicCorrect == nil {
		st.TopicCorrect = map[string]int{}
	}
	if r.LastPlayed != nil {
		t := *r.LastPlayed
		st.LastPlayed = &t
	}
	return st
}

// recordSchema accepts records written by older builds, which may carry
// extra fields or omit the collections.
var recordSchema = &schema.Schema{
	Name:        "progress-record",
	Description: "Persisted terpdex progress",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"xp":           map[string]any{"type": "integer", "minimum": 0},
			"bestStreak":   map[string]any{"type": "integer", "minimum": 0},
			"totalCorrect": map[string]any{"type": "integer", "minimum": 0},
			"achievements": map[string]any{
				"type":  []any{"array", "null"},
				"items": map[string]any{"type": "string"},
			},
			"modesUsed": map[string]any{
				"type":  []any{"array", "null"},
				"items": map[string]any{"type": "string"},
			},
			"terpeneCorrect": map[string]any{
				"type":                 []any{"object", "null"},
				"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
			},
			"lastPlayed": map[string]any{
				"type": []any{"string", "null"},
			},
		},
		"required": []any{"xp", "bestStreak", "totalCorrect"},
	},
}

// decodeRecord validates and decodes raw.
func decodeRecord(raw []byte) (Record, error) {
	if err := schema.Validate(recordSchema, raw); err != nil {
		return Record{}, err
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return Record{}, err
	}
	return r, nil
}
