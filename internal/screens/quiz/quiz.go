// Package quiz is the terminal study screen: pick a mode, then answer
// multiple-choice questions or self-grade flashcards.
package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/engine"
	"github.com/terpdex/terpdex/internal/game"
	"github.com/terpdex/terpdex/internal/screen"
	"github.com/terpdex/terpdex/internal/terpenes"
	"github.com/terpdex/terpdex/internal/ui/components"
	"github.com/terpdex/terpdex/internal/ui/layout"
)

// StudyType selects how questions are answered.
type StudyType string

const (
	StudyQuiz      StudyType = "quiz"
	StudyFlashcard StudyType = "flashcard"
)

// ParseStudyType accepts "quiz" and "flashcard". Empty means quiz.
func ParseStudyType(s string) (StudyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "quiz":
		return StudyQuiz, nil
	case "flashcard", "flashcards", "study":
		return StudyFlashcard, nil
	default:
		return "", fmt.Errorf("unknown study type %q (want quiz or flashcard)", s)
	}
}

const feedbackDelay = 1500 * time.Millisecond

type phase int

const (
	phaseModeSelect phase = iota
	phaseQuestion
	phaseFeedback
	phaseReveal
)

// Options configures a Screen.
type Options struct {
	StudyType StudyType
	// Mode starts play immediately in that mode; empty opens the mode menu.
	Mode terpenes.Mode
	// Preselect highlights a menu entry when Mode is empty.
	Preselect        terpenes.Mode
	XPToast          time.Duration
	AchievementToast time.Duration
	Rand             *rand.Rand
	Logger           *zap.Logger
}

// Screen implements screen.Screen for a study session.
type Screen struct {
	game   *game.Game
	deck   *terpenes.Deck
	rng    *rand.Rand
	logger *zap.Logger
	keys   keyMap

	study StudyType
	phase phase
	mode  terpenes.Mode
	start terpenes.Mode
	menu  components.Menu

	question    terpenes.Question
	mc          components.MultiChoice
	questionSeq int
	lastCorrect bool
	streakMsg   string
	comboMsg    string
	levelUp     string
	errMsg      string

	xpToastDur  time.Duration
	xpToast     int
	xpSeq       int
	achToastDur time.Duration
	achQueue    []achievements.Definition
	achSeq      int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a study screen over g and deck.
func New(g *game.Game, deck *terpenes.Deck, opts Options) *Screen {
	s := &Screen{
		game:        g,
		deck:        deck,
		rng:         opts.Rand,
		logger:      opts.Logger,
		keys:        defaultKeyMap(),
		study:       opts.StudyType,
		start:       opts.Mode,
		xpToastDur:  opts.XPToast,
		achToastDur: opts.AchievementToast,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.study == "" {
		s.study = StudyQuiz
	}
	if s.xpToastDur <= 0 {
		s.xpToastDur = 1500 * time.Millisecond
	}
	if s.achToastDur <= 0 {
		s.achToastDur = 3 * time.Second
	}
	s.menu = newModeMenu()
	highlight := opts.Preselect
	if opts.Mode != "" {
		highlight = opts.Mode
	}
	for i, m := range terpenes.Modes() {
		if m.ID == highlight {
			s.menu.Select(i)
		}
	}
	return s
}

func newModeMenu() components.Menu {
	modes := terpenes.Modes()
	items := make([]components.MenuItem, 0, len(modes))
	for _, m := range modes {
		mode := m.ID
		items = append(items, components.MenuItem{
			Label: m.Icon + " " + m.Label,
			Action: func() tea.Cmd {
				return func() tea.Msg { return modeChosenMsg{Mode: mode} }
			},
		})
	}
	return components.NewMenu(items)
}

// Init starts play directly when a mode was configured.
func (s *Screen) Init() tea.Cmd {
	if s.start == "" {
		return nil
	}
	mode := s.start
	return func() tea.Msg { return modeChosenMsg{Mode: mode} }
}

func (s *Screen) Title() string {
	if s.phase == phaseModeSelect {
		return "Choose a Mode"
	}
	info, _ := terpenes.LookupMode(string(s.mode))
	kind := "Quiz"
	if s.study == StudyFlashcard {
		kind = "Flashcards"
	}
	return fmt.Sprintf("%s %s · %s", info.Icon, info.Label, kind)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseModeSelect:
		return hints(s.keys.Navigate, s.keys.Select, s.keys.Toggle, s.keys.Quit)
	case phaseFeedback:
		return hints(s.keys.Continue, s.keys.Back)
	case phaseReveal:
		return hints(s.keys.Knew, s.keys.Missed, s.keys.Skip, s.keys.Back)
	}
	if s.study == StudyFlashcard {
		return hints(s.keys.Flip, s.keys.Skip, s.keys.Back)
	}
	return hints(s.keys.Navigate, s.keys.Answer, s.keys.Select, s.keys.Back)
}

// StudyType reports the active study type.
func (s *Screen) StudyType() StudyType {
	return s.study
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case modeChosenMsg:
		return s, s.startMode(msg.Mode)

	case feedbackDoneMsg:
		if s.phase == phaseFeedback && msg.Seq == s.questionSeq {
			return s, s.nextQuestion()
		}
		return s, nil

	case xpToastDoneMsg:
		if msg.Seq == s.xpSeq {
			s.xpToast = 0
			s.levelUp = ""
		}
		return s, nil

	case achievementToastDoneMsg:
		return s, s.handleAchievementToastDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseModeSelect && key.Matches(msg, s.keys.Back) {
		s.phase = phaseModeSelect
		s.errMsg = ""
		return s, nil
	}

	switch s.phase {
	case phaseModeSelect:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keys.Toggle):
			if s.study == StudyQuiz {
				s.study = StudyFlashcard
			} else {
				s.study = StudyQuiz
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd

	case phaseQuestion:
		if s.study == StudyFlashcard {
			switch {
			case key.Matches(msg, s.keys.Flip):
				s.phase = phaseReveal
			case key.Matches(msg, s.keys.Skip):
				return s, s.nextQuestion()
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s, tea.Batch(cmd, s.submit(s.mc.IsCorrect()), s.feedbackCmd())
		}
		return s, cmd

	case phaseFeedback:
		if key.Matches(msg, s.keys.Continue) {
			return s, s.nextQuestion()
		}

	case phaseReveal:
		switch {
		case key.Matches(msg, s.keys.Knew):
			return s, tea.Batch(s.submit(true), s.nextQuestion())
		case key.Matches(msg, s.keys.Missed):
			return s, tea.Batch(s.submit(false), s.nextQuestion())
		case key.Matches(msg, s.keys.Skip):
			return s, s.nextQuestion()
		case key.Matches(msg, s.keys.Flip):
			s.phase = phaseQuestion
		}
	}
	return s, nil
}

// startMode records the selection and shows the first question.
func (s *Screen) startMode(mode terpenes.Mode) tea.Cmd {
	if _, ok := terpenes.LookupMode(string(mode)); !ok {
		s.errMsg = fmt.Sprintf("unknown mode %q", mode)
		return nil
	}
	s.mode = mode
	out := s.game.SelectMode(context.Background(), string(mode))
	return tea.Batch(s.celebrate(out), s.nextQuestion())
}

func (s *Screen) nextQuestion() tea.Cmd {
	q, err := s.deck.NewQuestion(s.mode, s.rng)
	if err != nil {
		s.logger.Error("question generation failed", zap.Error(err))
		s.errMsg = err.Error()
		s.phase = phaseModeSelect
		return nil
	}

	s.question = q
	s.questionSeq++
	s.errMsg = ""
	s.phase = phaseQuestion
	if s.study == StudyQuiz {
		choices, correct := s.deck.Choices(q, s.rng)
		s.mc = components.NewMultiChoice(q.Prompt, choices, correct)
	}
	return nil
}

// submit grades the current question through the game.
func (s *Screen) submit(correct bool) tea.Cmd {
	out := s.game.Answer(context.Background(), correct, s.question.Topic)
	s.lastCorrect = correct
	s.streakMsg = out.StreakMessage
	s.comboMsg = out.ComboMessage
	return s.celebrate(out)
}

func (s *Screen) feedbackCmd() tea.Cmd {
	s.phase = phaseFeedback
	return after(feedbackDelay, feedbackDoneMsg{Seq: s.questionSeq})
}

// celebrate schedules the XP and achievement toasts for out.
func (s *Screen) celebrate(out engine.Outcome) tea.Cmd {
	var cmds []tea.Cmd

	if out.XPGained > 0 {
		s.xpSeq++
		s.xpToast = out.XPGained
		s.levelUp = ""
		if out.LeveledUp {
			s.levelUp = fmt.Sprintf("Level up! Lv %d %s", out.Level.Current.Level, out.Level.Current.Title)
		}
		cmds = append(cmds, after(s.xpToastDur, xpToastDoneMsg{Seq: s.xpSeq}))
	}

	if len(out.Unlocked) > 0 {
		idle := len(s.achQueue) == 0
		s.achQueue = append(s.achQueue, out.Unlocked...)
		if idle {
			s.achSeq++
			cmds = append(cmds, after(s.achToastDur, achievementToastDoneMsg{Seq: s.achSeq}))
		}
	}

	return tea.Batch(cmds...)
}

func (s *Screen) handleAchievementToastDone(msg achievementToastDoneMsg) tea.Cmd {
	if msg.Seq != s.achSeq || len(s.achQueue) == 0 {
		return nil
	}
	s.achQueue = s.achQueue[1:]
	if len(s.achQueue) == 0 {
		return nil
	}
	s.achSeq++
	return after(s.achToastDur, achievementToastDoneMsg{Seq: s.achSeq})
}
