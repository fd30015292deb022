// Package terpenes holds the terpene reference data and builds quiz
// questions from it.
package terpenes

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/terpdex/terpdex/internal/schema"
)

//go:embed data/terpenes.json
var builtinData []byte

// Terpene is one reference entry.
type Terpene struct {
	Name        string   `json:"name"`
	Aroma       string   `json:"aroma"`
	Feelings    string   `json:"feelings"`
	Therapeutic string   `json:"therapeutic"`
	QuickLine   string   `json:"quickLine"`
	MenuItems   []string `json:"menuItems"`
	PairsBest   string   `json:"pairsBest"`
	HerbAnalogs string   `json:"herbAnalogs"`
}

// Pairings returns the pairing list without the trailing quick combos.
func (t Terpene) Pairings() string {
	head, _, _ := strings.Cut(t.PairsBest, ". Quick combos:")
	return strings.TrimSpace(head)
}

// QuickCombos returns the text after "Quick combos:", if any.
func (t Terpene) QuickCombos() string {
	_, tail, ok := strings.Cut(t.PairsBest, "Quick combos:")
	if !ok {
		return ""
	}
	return strings.TrimSpace(tail)
}

// PrimaryTherapeutic returns the first clause of the therapeutic text.
func (t Terpene) PrimaryTherapeutic() string {
	head, _, _ := strings.Cut(t.Therapeutic, ";")
	return strings.TrimSpace(head)
}

// Herbs splits HerbAnalogs into individual names.
func (t Terpene) Herbs() []string {
	var out []string
	for _, h := range strings.Split(t.HerbAnalogs, ",") {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}

var dataSchema = &schema.Schema{
	Name:        "terpene-data",
	Description: "Terpene reference entries",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":        map[string]any{"type": "string", "minLength": 1},
				"aroma":       map[string]any{"type": "string", "minLength": 1},
				"feelings":    map[string]any{"type": "string", "minLength": 1},
				"therapeutic": map[string]any{"type": "string", "minLength": 1},
				"quickLine":   map[string]any{"type": "string", "minLength": 1},
				"menuItems": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string", "minLength": 1},
				},
				"pairsBest":   map[string]any{"type": "string"},
				"herbAnalogs": map[string]any{"type": "string"},
			},
			"required": []any{"name", "aroma", "feelings", "therapeutic", "quickLine", "menuItems"},
		},
	},
}

// Parse validates and decodes terpene data. Names must be unique.
func Parse(data []byte) ([]Terpene, error) {
	if err := schema.Validate(dataSchema, data); err != nil {
		return nil, err
	}
	var ts []Terpene
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("decode terpenes: %w", err)
	}
	seen := make(map[string]bool, len(ts))
	for _, t := range ts {
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate terpene %q", t.Name)
		}
		seen[t.Name] = true
	}
	return ts, nil
}

// Builtin returns the embedded reference data.
func Builtin() []Terpene {
	ts, err := Parse(builtinData)
	if err != nil {
		panic(fmt.Sprintf("embedded terpene data: %v", err))
	}
	return ts
}
