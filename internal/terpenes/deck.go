package terpenes

import (
	"fmt"
	"math/rand/v2"
)

// Question asks about one field of one terpene.
type Question struct {
	Topic   string
	Mode    Mode
	Prompt  string
	Answer  string
	Terpene Terpene
}

// Deck draws questions from a fixed set of terpenes.
type Deck struct {
	terpenes []Terpene
}

// NewDeck creates a deck over ts.
func NewDeck(ts []Terpene) (*Deck, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("deck needs at least one terpene")
	}
	return &Deck{terpenes: ts}, nil
}

// Terpenes returns the deck's entries.
func (d *Deck) Terpenes() []Terpene {
	out := make([]Terpene, len(d.terpenes))
	copy(out, d.terpenes)
	return out
}

// Lookup finds a terpene by name.
func (d *Deck) Lookup(name string) (Terpene, bool) {
	for _, t := range d.terpenes {
		if t.Name == name {
			return t, true
		}
	}
	return Terpene{}, false
}

// NewQuestion picks a random terpene. In random mode the question type is
// drawn from every non-random mode.
func (d *Deck) NewQuestion(mode Mode, rng *rand.Rand) (Question, error) {
	qmode := mode
	if mode == ModeRandom {
		qm := QuestionModes()
		qmode = qm[rng.IntN(len(qm))]
	}
	info, ok := LookupMode(string(qmode))
	if !ok {
		return Question{}, fmt.Errorf("unknown mode %q", mode)
	}

	t := d.terpenes[rng.IntN(len(d.terpenes))]
	return Question{
		Topic:   t.Name,
		Mode:    qmode,
		Prompt:  info.Prompt,
		Answer:  fieldAnswer(t, qmode, rng),
		Terpene: t,
	}, nil
}

// Choices returns q.Answer plus up to three distinct distractors taken
// from other terpenes, shuffled, and the index of the correct option.
func (d *Deck) Choices(q Question, rng *rand.Rand) ([]string, int) {
	others := make([]Terpene, 0, len(d.terpenes))
	for _, t := range d.terpenes {
		if t.Name != q.Topic {
			others = append(others, t)
		}
	}
	rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	options := []string{q.Answer}
	seen := map[string]bool{q.Answer: true}
	for _, t := range others {
		if len(options) == 4 {
			break
		}
		a := fieldAnswer(t, q.Mode, rng)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		options = append(options, a)
	}

	// Fisher-Yates, tracking where the answer lands.
	correct := 0
	for i := len(options) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		options[i], options[j] = options[j], options[i]
		switch correct {
		case i:
			correct = j
		case j:
			correct = i
		}
	}
	return options, correct
}

func fieldAnswer(t Terpene, m Mode, rng *rand.Rand) string {
	switch m {
	case ModeAroma:
		return t.Aroma
	case ModeFeelings:
		return t.Feelings
	case ModeTherapeutic:
		return t.PrimaryTherapeutic()
	case ModeQuick:
		return t.QuickLine
	case ModeMenu:
		if len(t.MenuItems) == 0 {
			return ""
		}
		return t.MenuItems[rng.IntN(len(t.MenuItems))]
	case ModePairsBest:
		return t.Pairings()
	case ModeHerbAnalogs:
		return t.HerbAnalogs
	default:
		return t.Aroma
	}
}
