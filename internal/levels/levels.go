// Package levels holds the ten-step XP ladder and resolves a running XP
// total to the current level and progress toward the next.
package levels

// Definition is one row of the level table.
type Definition struct {
	Level      int    `json:"level" yaml:"level"`
	XPRequired int    `json:"xpRequired" yaml:"xpRequired"`
	Title      string `json:"title" yaml:"title"`
}

// table is ordered by Level and XPRequired; XPRequired strictly increases.
var table = []Definition{
	{Level: 1, XPRequired: 0, Title: "Novice"},
	{Level: 2, XPRequired: 100, Title: "Apprentice"},
	{Level: 3, XPRequired: 250, Title: "Student"},
	{Level: 4, XPRequired: 500, Title: "Practitioner"},
	{Level: 5, XPRequired: 1000, Title: "Budtender"},
	{Level: 6, XPRequired: 1750, Title: "Senior Budtender"},
	{Level: 7, XPRequired: 2750, Title: "Expert"},
	{Level: 8, XPRequired: 4000, Title: "Master"},
	{Level: 9, XPRequired: 5500, Title: "Guru"},
	{Level: 10, XPRequired: 7500, Title: "Cannabis Sommelier"},
}

// All returns a copy of the level table in ascending order.
func All() []Definition {
	out := make([]Definition, len(table))
	copy(out, table)
	return out
}

// Max returns the terminal level definition.
func Max() Definition {
	return table[len(table)-1]
}

// Info is the resolved level position for an XP total.
type Info struct {
	Current         Definition `json:"currentLevel" yaml:"currentLevel"`
	Next            Definition `json:"nextLevel" yaml:"nextLevel"`
	ProgressPercent float64    `json:"progressPercent" yaml:"progressPercent"`
	XPToNext        int        `json:"xpToNext" yaml:"xpToNext"`
}

// IsMax reports whether Current is the terminal level.
func (i Info) IsMax() bool {
	return i.Current.Level == i.Next.Level
}

// Resolve finds the level for xp. Current is the last row whose threshold
// is at or below xp; a negative xp resolves to the first row.
func Resolve(xp int) Info {
	idx := 0
	for i, def := range table {
		if def.XPRequired > xp {
			break
		}
		idx = i
	}

	cur := table[idx]
	if idx == len(table)-1 {
		return Info{Current: cur, Next: cur, ProgressPercent: 100, XPToNext: 0}
	}

	next := table[idx+1]
	span := next.XPRequired - cur.XPRequired
	pct := float64(xp-cur.XPRequired) / float64(span) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	toNext := next.XPRequired - xp
	if toNext < 0 {
		toNext = 0
	}

	return Info{Current: cur, Next: next, ProgressPercent: pct, XPToNext: toNext}
}
