package achievements

import (
	"encoding/json"
	"fmt"

	"github.com/terpdex/terpdex/internal/levels"
)

// Kind is the tag of a Requirement variant. The values match the tags used
// in catalog data files.
type Kind string

const (
	KindCorrect   Kind = "correct"
	KindStreak    Kind = "streak"
	KindAccuracy  Kind = "accuracy"
	KindLevel     Kind = "level"
	KindModes     Kind = "modes"
	KindSession   Kind = "session"
	KindTopic     Kind = "terpene"
	KindAllTopics Kind = "allTerpenes"
)

// Stats is the snapshot a Requirement is evaluated against.
type Stats struct {
	XP            int
	TotalCorrect  int
	CurrentStreak int
	Score         int
	Total         int
	SessionCount  int
	ModesUsed     int
	TopicCorrect  map[string]int
}

// Accuracy returns score/total as a percentage, or 0 with no answers.
func (s Stats) Accuracy() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total) * 100
}

// Requirement is a closed set of unlock predicates. Every variant lives in
// this package; adding one means implementing satisfiedBy.
type Requirement interface {
	Kind() Kind
	satisfiedBy(s Stats) bool
}

// Correct requires a lifetime correct-answer total.
type Correct struct{ Value int }

// Streak requires a current streak length.
type Streak struct{ Value int }

// Accuracy requires a session accuracy percentage once MinQuestions have
// been answered.
type Accuracy struct {
	Value        float64
	MinQuestions int
}

// Level requires a resolved level.
type Level struct{ Value int }

// ModesUsed requires a number of distinct study modes ever selected.
type ModesUsed struct{ Value int }

// Session requires a number of answers in the current session.
type Session struct{ Value int }

// TopicCorrect requires a correct count for one topic.
type TopicCorrect struct {
	Topic string
	Count int
}

// AllTopics requires every attempted topic to reach Value correct answers.
type AllTopics struct{ Value int }

// Unknown stands in for a tag this build does not recognize. It never
// unlocks.
type Unknown struct{ Tag string }

func (Correct) Kind() Kind      { return KindCorrect }
func (Streak) Kind() Kind       { return KindStreak }
func (Accuracy) Kind() Kind     { return KindAccuracy }
func (Level) Kind() Kind        { return KindLevel }
func (ModesUsed) Kind() Kind    { return KindModes }
func (Session) Kind() Kind      { return KindSession }
func (TopicCorrect) Kind() Kind { return KindTopic }
func (AllTopics) Kind() Kind    { return KindAllTopics }
func (u Unknown) Kind() Kind    { return Kind(u.Tag) }

func (r Correct) satisfiedBy(s Stats) bool { return s.TotalCorrect >= r.Value }
func (r Streak) satisfiedBy(s Stats) bool  { return s.CurrentStreak >= r.Value }

func (r Accuracy) satisfiedBy(s Stats) bool {
	if s.Total < r.MinQuestions {
		return false
	}
	return s.Accuracy() >= r.Value
}

func (r Level) satisfiedBy(s Stats) bool     { return levels.Resolve(s.XP).Current.Level >= r.Value }
func (r ModesUsed) satisfiedBy(s Stats) bool { return s.ModesUsed >= r.Value }
func (r Session) satisfiedBy(s Stats) bool   { return s.SessionCount >= r.Value }

func (r TopicCorrect) satisfiedBy(s Stats) bool {
	n, ok := s.TopicCorrect[r.Topic]
	return ok && n >= r.Count
}

// An empty topic map satisfies nothing.
func (r AllTopics) satisfiedBy(s Stats) bool {
	if len(s.TopicCorrect) == 0 {
		return false
	}
	for _, n := range s.TopicCorrect {
		if n < r.Value {
			return false
		}
	}
	return true
}

func (Unknown) satisfiedBy(Stats) bool { return false }

// requirementJSON is the tagged wire shape of a Requirement. Topic
// requirements carry the terpene name in Value.
type requirementJSON struct {
	Type         Kind `json:"type"`
	Value        any  `json:"value,omitempty"`
	MinQuestions int  `json:"minQuestions,omitempty"`
	Count        int  `json:"count,omitempty"`
}

// EncodeRequirement marshals r into its tagged JSON form.
func EncodeRequirement(r Requirement) ([]byte, error) {
	var w requirementJSON
	switch r := r.(type) {
	case Correct:
		w = requirementJSON{Type: KindCorrect, Value: r.Value}
	case Streak:
		w = requirementJSON{Type: KindStreak, Value: r.Value}
	case Accuracy:
		w = requirementJSON{Type: KindAccuracy, Value: r.Value, MinQuestions: r.MinQuestions}
	case Level:
		w = requirementJSON{Type: KindLevel, Value: r.Value}
	case ModesUsed:
		w = requirementJSON{Type: KindModes, Value: r.Value}
	case Session:
		w = requirementJSON{Type: KindSession, Value: r.Value}
	case TopicCorrect:
		w = requirementJSON{Type: KindTopic, Value: r.Topic, Count: r.Count}
	case AllTopics:
		w = requirementJSON{Type: KindAllTopics, Value: r.Value}
	case Unknown:
		w = requirementJSON{Type: Kind(r.Tag)}
	default:
		return nil, fmt.Errorf("encode requirement: unsupported type %T", r)
	}
	return json.Marshal(w)
}

// rawRequirement holds the fields of a tagged requirement undecoded, so a
// field of the wrong shape degrades one entry instead of the whole catalog.
type rawRequirement map[string]json.RawMessage

func (r rawRequirement) number(key string) (float64, bool) {
	raw, ok := r[key]
	if !ok {
		return 0, true
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	return v, true
}

func (r rawRequirement) integer(key string) (int, bool) {
	v, ok := r.number(key)
	return int(v), ok
}

func (r rawRequirement) text(key string) (string, bool) {
	raw, ok := r[key]
	if !ok {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}

// DecodeRequirement parses the tagged JSON form. Unrecognized tags and
// fields of the wrong shape decode to Unknown, which never unlocks. Only
// data that is not a JSON object is an error.
func DecodeRequirement(data []byte) (Requirement, error) {
	var r rawRequirement
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode requirement: %w", err)
	}

	tag, _ := r.text("type")
	unknown := Unknown{Tag: tag}

	switch Kind(tag) {
	case KindCorrect, KindStreak, KindLevel, KindModes, KindSession, KindAllTopics:
		v, ok := r.integer("value")
		if !ok {
			return unknown, nil
		}
		switch Kind(tag) {
		case KindCorrect:
			return Correct{Value: v}, nil
		case KindStreak:
			return Streak{Value: v}, nil
		case KindLevel:
			return Level{Value: v}, nil
		case KindModes:
			return ModesUsed{Value: v}, nil
		case KindSession:
			return Session{Value: v}, nil
		default:
			return AllTopics{Value: v}, nil
		}
	case KindAccuracy:
		v, ok := r.number("value")
		minQ, ok2 := r.integer("minQuestions")
		if !ok || !ok2 {
			return unknown, nil
		}
		return Accuracy{Value: v, MinQuestions: minQ}, nil
	case KindTopic:
		topic, ok := r.text("value")
		if !ok {
			topic, ok = r.text("topic")
		}
		count, ok2 := r.integer("count")
		if !ok || !ok2 || topic == "" {
			return unknown, nil
		}
		return TopicCorrect{Topic: topic, Count: count}, nil
	default:
		return unknown, nil
	}
}
