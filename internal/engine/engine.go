// Package engine turns answer and mode-selection events into progression
// changes. It is pure: every transition takes a Snapshot and returns a new
// one without touching the input.
package engine

import (
	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/levels"
	"github.com/terpdex/terpdex/internal/progress"
)

// Session is the transient per-run counters. It starts at zero.
type Session struct {
	CurrentStreak int
	Combo         int
	Score         int
	Total         int

	// Count is the number of answers processed this session.
	Count int
}

// Snapshot is everything a transition reads.
type Snapshot struct {
	Progress progress.State
	Session  Session
}

// NewSnapshot starts a fresh session over st.
func NewSnapshot(st progress.State) Snapshot {
	return Snapshot{Progress: st.Clone()}
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Progress: s.Progress.Clone(), Session: s.Session}
}

// Stats projects the snapshot onto the view achievement checks use.
func (s Snapshot) Stats() achievements.Stats {
	return achievements.Stats{
		XP:            s.Progress.XP,
		TotalCorrect:  s.Progress.TotalCorrect,
		CurrentStreak: s.Session.CurrentStreak,
		Score:         s.Session.Score,
		Total:         s.Session.Total,
		SessionCount:  s.Session.Count,
		ModesUsed:     s.Progress.ModesUsed.Len(),
		TopicCorrect:  s.Progress.TopicCorrect,
	}
}

// Level resolves the snapshot's XP.
func (s Snapshot) Level() levels.Info {
	return levels.Resolve(s.Progress.XP)
}

// AnswerEvent is one graded answer. TopicID may be empty.
type AnswerEvent struct {
	Correct bool
	TopicID string
}

// ModeEvent records a study mode selection.
type ModeEvent struct {
	ModeID string
}

// Outcome is the result of a transition.
type Outcome struct {
	Snapshot      Snapshot
	XPGained      int
	Unlocked      []achievements.Definition
	Level         levels.Info
	LeveledUp     bool
	StreakMessage string
	ComboMessage  string
}

// Engine applies events against an achievement catalog.
type Engine struct {
	catalog []achievements.Definition
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the built-in achievement catalog.
func WithCatalog(defs []achievements.Definition) Option {
	return func(e *Engine) {
		e.catalog = defs
	}
}

// New creates an Engine using the built-in catalog unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{catalog: achievements.Catalog()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine evaluates.
func (e *Engine) Catalog() []achievements.Definition {
	return e.catalog
}

var defaultEngine = New()

// ApplyAnswer runs ev through the default engine.
func ApplyAnswer(snap Snapshot, ev AnswerEvent) Outcome {
	return defaultEngine.ApplyAnswer(snap, ev)
}

// ApplyMode runs ev through the default engine.
func ApplyMode(snap Snapshot, ev ModeEvent) Outcome {
	return defaultEngine.ApplyMode(snap, ev)
}

// ApplyAnswer counts one answer, credits XP on a correct one and unlocks
// any achievements the updated snapshot satisfies.
func (e *Engine) ApplyAnswer(snap Snapshot, ev AnswerEvent) Outcome {
	next := snap.Clone()
	before := levels.Resolve(snap.Progress.XP)

	sess := &next.Session
	prog := &next.Progress
	sess.Total++
	sess.Count++

	xp := 0
	if ev.Correct {
		sess.Score++
		sess.CurrentStreak++
		sess.Combo++
		prog.TotalCorrect++
		prog.BestStreak = max(prog.BestStreak, sess.CurrentStreak)
		if ev.TopicID != "" {
			prog.TopicCorrect[ev.TopicID]++
		}
		xp = ComputeXP(true, sess.CurrentStreak, sess.Combo)
		prog.XP += xp
	} else {
		sess.CurrentStreak = 0
		sess.Combo = 0
		if ev.TopicID != "" {
			if _, ok := prog.TopicCorrect[ev.TopicID]; !ok {
				prog.TopicCorrect[ev.TopicID] = 0
			}
		}
	}

	out := e.finish(next, before)
	out.XPGained = xp
	if ev.Correct {
		out.StreakMessage = StreakMessage(sess.CurrentStreak)
		out.ComboMessage = ComboMessage(sess.Combo)
	}
	return out
}

// ApplyMode records a mode in the used set and evaluates achievements.
// Selecting a mode twice is a no-op apart from the evaluation.
func (e *Engine) ApplyMode(snap Snapshot, ev ModeEvent) Outcome {
	next := snap.Clone()
	before := levels.Resolve(snap.Progress.XP)
	next.Progress.ModesUsed = next.Progress.ModesUsed.Add(ev.ModeID)
	return e.finish(next, before)
}

func (e *Engine) finish(next Snapshot, before levels.Info) Outcome {
	newly := achievements.Check(e.catalog, next.Stats(), next.Progress.Achievements)
	if len(newly) > 0 {
		ids := make([]string, len(newly))
		for i, d := range newly {
			ids[i] = d.ID
		}
		next.Progress.Achievements = next.Progress.Achievements.Add(ids...)
	}

	after := next.Level()
	return Outcome{
		Snapshot:  next,
		Unlocked:  newly,
		Level:     after,
		LeveledUp: after.Current.Level > before.Current.Level,
	}
}
