package terpenes

// Mode is a study mode. Every mode except Random names the terpene field
// its questions ask about.
type Mode string

const (
	ModeRandom      Mode = "random"
	ModeAroma       Mode = "aroma"
	ModeFeelings    Mode = "feelings"
	ModeTherapeutic Mode = "therapeutic"
	ModeMenu        Mode = "menu"
	ModeQuick       Mode = "quick"
	ModePairsBest   Mode = "pairsBest"
	ModeHerbAnalogs Mode = "herbAnalogs"
)

// ModeInfo describes a mode for selection screens.
type ModeInfo struct {
	ID     Mode
	Icon   string
	Label  string
	Prompt string
}

var modes = []ModeInfo{
	{ModeRandom, "🎲", "Random Mix", ""},
	{ModeAroma, "👃", "Aroma Profile", "What is the aroma profile?"},
	{ModeFeelings, "😊", "Common Feelings", "What are the common reported feelings?"},
	{ModeTherapeutic, "💊", "Therapeutic", "What is the primary therapeutic potential?"},
	{ModeMenu, "📋", "Menu Items", "Name a product on the menu that features this terpene:"},
	{ModeQuick, "⚡", "Quick Lines", "What's the quick counter line?"},
	{ModePairsBest, "🤝", "Terpene Pairings", "Which terpenes pair best with this one?"},
	{ModeHerbAnalogs, "🌱", "Herb Analogs", "What herbs/plants have similar terpene profiles?"},
}

// Modes returns every mode in display order.
func Modes() []ModeInfo {
	out := make([]ModeInfo, len(modes))
	copy(out, modes)
	return out
}

// QuestionModes returns the modes Random draws from.
func QuestionModes() []Mode {
	out := make([]Mode, 0, len(modes)-1)
	for _, m := range modes {
		if m.ID != ModeRandom {
			out = append(out, m.ID)
		}
	}
	return out
}

// LookupMode finds a mode by id.
func LookupMode(id string) (ModeInfo, bool) {
	for _, m := range modes {
		if string(m.ID) == id {
			return m, true
		}
	}
	return ModeInfo{}, false
}
