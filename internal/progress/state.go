package progress

import (
	"maps"
	"time"
)

// State is the durable progression aggregate for one learner.
type State struct {
	XP           int
	BestStreak   int
	TotalCorrect int
	Achievements Set
	ModesUsed    Set

	// TopicCorrect counts correct answers per terpene. A zero entry means
	// the topic was attempted but never answered correctly.
	TopicCorrect map[string]int

	// LastPlayed is nil until the first successful save.
	LastPlayed *time.Time
}

// Default returns the state of a learner who has never played.
func Default() State {
	return State{
		Achievements: Set{},
		ModesUsed:    Set{},
		TopicCorrect: map[string]int{},
	}
}

// Clone returns a deep copy. Sets are immutable and shared safely.
func (s State) Clone() State {
	out := s
	if s.TopicCorrect != nil {
		out.TopicCorrect = maps.Clone(s.TopicCorrect)
	} else {
		out.TopicCorrect = map[string]int{}
	}
	if s.LastPlayed != nil {
		t := *s.LastPlayed
		out.LastPlayed = &t
	}
	return out
}

// AttemptedTopics returns how many distinct topics have an entry.
func (s State) AttemptedTopics() int {
	return len(s.TopicCorrect)
}

// Equal compares two states ignoring LastPlayed.
func (s State) Equal(o State) bool {
	if s.XP != o.XP || s.BestStreak != o.BestStreak || s.TotalCorrect != o.TotalCorrect {
		return false
	}
	if !s.Achievements.Equal(o.Achievements) || !s.ModesUsed.Equal(o.ModesUsed) {
		return false
	}
	if len(s.TopicCorrect) != len(o.TopicCorrect) {
		return false
	}
	for k, v := range s.TopicCorrect {
		if ov, ok := o.TopicCorrect[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
