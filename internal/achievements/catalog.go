package achievements

import (
	"encoding/json"
	"fmt"
	"io"
)

// Definition is a single unlockable achievement.
type Definition struct {
	ID          string
	Title       string
	Description string
	Requirement Requirement
}

type definitionJSON struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Requirement json.RawMessage `json:"requirement"`
}

// MarshalJSON encodes the definition with its tagged requirement.
func (d Definition) MarshalJSON() ([]byte, error) {
	var req json.RawMessage
	if d.Requirement != nil {
		b, err := EncodeRequirement(d.Requirement)
		if err != nil {
			return nil, fmt.Errorf("achievement %q: %w", d.ID, err)
		}
		req = b
	}
	return json.Marshal(definitionJSON{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Requirement: req,
	})
}

// UnmarshalJSON decodes a definition. A missing requirement leaves it nil,
// which never unlocks.
func (d *Definition) UnmarshalJSON(data []byte) error {
	var w definitionJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d.ID = w.ID
	d.Title = w.Title
	d.Description = w.Description
	d.Requirement = nil
	if len(w.Requirement) > 0 && string(w.Requirement) != "null" {
		req, err := DecodeRequirement(w.Requirement)
		if err != nil {
			return fmt.Errorf("achievement %q: %w", w.ID, err)
		}
		d.Requirement = req
	}
	return nil
}

var catalog = []Definition{
	{
		ID:          "first_correct",
		Title:       "🌱 First Steps",
		Description: "Get your first answer correct",
		Requirement: Correct{Value: 1},
	},
	{
		ID:          "ten_correct",
		Title:       "🌿 Budding Expert",
		Description: "Get 10 answers correct",
		Requirement: Correct{Value: 10},
	},
	{
		ID:          "fifty_correct",
		Title:       "🍃 Terpene Scholar",
		Description: "Get 50 answers correct",
		Requirement: Correct{Value: 50},
	},
	{
		ID:          "hundred_correct",
		Title:       "🌳 Master Budtender",
		Description: "Get 100 answers correct",
		Requirement: Correct{Value: 100},
	},
	{
		ID:          "perfect_streak_5",
		Title:       "🔥 On Fire!",
		Description: "Get 5 in a row correct",
		Requirement: Streak{Value: 5},
	},
	{
		ID:          "perfect_streak_10",
		Title:       "🔥🔥 Unstoppable!",
		Description: "Get 10 in a row correct",
		Requirement: Streak{Value: 10},
	},
	{
		ID:          "perfect_streak_20",
		Title:       "🔥🔥🔥 Legendary!",
		Description: "Get 20 in a row correct",
		Requirement: Streak{Value: 20},
	},
	{
		ID:          "accuracy_80",
		Title:       "🎯 Sharp Mind",
		Description: "Maintain 80% accuracy (min 20 questions)",
		Requirement: Accuracy{Value: 80, MinQuestions: 20},
	},
	{
		ID:          "accuracy_90",
		Title:       "🎯🎯 Precision Expert",
		Description: "Maintain 90% accuracy (min 30 questions)",
		Requirement: Accuracy{Value: 90, MinQuestions: 30},
	},
	{
		ID:          "level_5",
		Title:       "⭐ Rising Star",
		Description: "Reach level 5",
		Requirement: Level{Value: 5},
	},
	{
		ID:          "level_10",
		Title:       "⭐⭐ Expert Budtender",
		Description: "Reach level 10",
		Requirement: Level{Value: 10},
	},
	{
		ID:          "all_modes",
		Title:       "🎲 Well Rounded",
		Description: "Try all study modes",
		Requirement: ModesUsed{Value: 6},
	},
	{
		ID:          "speed_demon",
		Title:       "⚡ Speed Demon",
		Description: "Complete 50 cards in one session",
		Requirement: Session{Value: 50},
	},
	{
		ID:          "myrcene_master",
		Title:       "🍄 Myrcene Master",
		Description: "Answer 10 Myrcene questions correctly",
		Requirement: TopicCorrect{Topic: "Myrcene", Count: 10},
	},
	{
		ID:          "limonene_pro",
		Title:       "🍋 Limonene Pro",
		Description: "Answer 10 Limonene questions correctly",
		Requirement: TopicCorrect{Topic: "Limonene", Count: 10},
	},
	{
		ID:          "all_terpenes",
		Title:       "🌈 Rainbow Master",
		Description: "Get at least 5 correct answers for each terpene",
		Requirement: AllTopics{Value: 5},
	},
}

// Catalog returns a copy of the built-in catalog in declaration order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a built-in definition by id.
func Lookup(id string) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// LoadCatalog reads a JSON array of definitions. Ids must be non-empty and
// unique; unrecognized requirement tags are kept as Unknown.
func LoadCatalog(r io.Reader) ([]Definition, error) {
	var defs []Definition
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// Validate checks catalog-level invariants.
func Validate(defs []Definition) error {
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			return fmt.Errorf("catalog entry %d: empty id", i)
		}
		if seen[d.ID] {
			return fmt.Errorf("catalog entry %d: duplicate id %q", i, d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}
