package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/terpdex/terpdex/internal/game"
	"github.com/terpdex/terpdex/internal/persist"
	"github.com/terpdex/terpdex/internal/screens/quiz"
	"github.com/terpdex/terpdex/internal/store"
	"github.com/terpdex/terpdex/internal/terpenes"
)

func newModel(t *testing.T) AppModel {
	t.Helper()
	deck, err := terpenes.NewDeck(terpenes.Builtin())
	if err != nil {
		t.Fatal(err)
	}
	g := game.New(context.Background(), persist.New(store.NewMemoryKV()), nil)
	return newAppModel(g, quiz.New(g, deck, quiz.Options{}))
}

func resize(t *testing.T, m AppModel, w, h int) AppModel {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestView_TooSmall(t *testing.T) {
	m := resize(t, newModel(t), 40, 10)
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestView_Frame(t *testing.T) {
	m := resize(t, newModel(t), 100, 40)
	content := m.render()
	for _, want := range []string{"terpdex", "Choose a Mode", "Lv 1", "Ctrl+C", "Tab"} {
		if !strings.Contains(content, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestUpdate_ForwardsToScreen(t *testing.T) {
	m := resize(t, newModel(t), 100, 40)
	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	m = updated.(AppModel)

	s := m.screen.(*quiz.Screen)
	if s.StudyType() != quiz.StudyFlashcard {
		t.Errorf("StudyType = %s", s.StudyType())
	}
}
