// Package game owns the living progression snapshot for one play session.
package game

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/engine"
	"github.com/terpdex/terpdex/internal/persist"
	"github.com/terpdex/terpdex/internal/progress"
)

// Game serializes events against a single snapshot and writes every
// change through to storage.
type Game struct {
	mu        sync.Mutex
	snap      engine.Snapshot
	engine    *engine.Engine
	persister persist.Persister
	logger    *zap.Logger
	sessionID string
	saveErr   error
}

// Option configures a Game.
type Option func(*Game)

// WithEngine replaces the default engine.
func WithEngine(e *engine.Engine) Option {
	return func(g *Game) { g.engine = e }
}

// New loads saved progress and starts a fresh session.
func New(ctx context.Context, p persist.Persister, logger *zap.Logger, opts ...Option) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		engine:    engine.New(),
		persister: p,
		sessionID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = logger.With(zap.String("session_id", g.sessionID))
	g.snap = engine.NewSnapshot(p.Load(ctx))

	g.logger.Debug("session started",
		zap.Int("xp", g.snap.Progress.XP),
		zap.Int("achievements", g.snap.Progress.Achievements.Len()))
	return g
}

// SessionID identifies this run.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() engine.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snap.Clone()
}

// Catalog returns the achievement catalog events are checked against.
func (g *Game) Catalog() []achievements.Definition {
	return g.engine.Catalog()
}

// LastSaveError returns the error from the most recent save, if any.
func (g *Game) LastSaveError() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saveErr
}

// Answer records a graded answer for topic.
func (g *Game) Answer(ctx context.Context, correct bool, topic string) engine.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := g.engine.ApplyAnswer(g.snap, engine.AnswerEvent{Correct: correct, TopicID: topic})
	g.logger.Debug("answer",
		zap.Bool("correct", correct),
		zap.String("topic", topic),
		zap.Int("xp_gained", out.XPGained),
		zap.Int("streak", out.Snapshot.Session.CurrentStreak))
	return g.commit(ctx, out)
}

// SelectMode records a study mode selection.
func (g *Game) SelectMode(ctx context.Context, mode string) engine.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := g.engine.ApplyMode(g.snap, engine.ModeEvent{ModeID: mode})
	g.logger.Debug("mode selected", zap.String("mode", mode))
	return g.commit(ctx, out)
}

// commit installs out's snapshot and saves it. A failed save is logged and
// otherwise ignored; play continues on the in-memory state. Callers hold mu.
func (g *Game) commit(ctx context.Context, out engine.Outcome) engine.Outcome {
	for _, d := range out.Unlocked {
		g.logger.Info("achievement unlocked", zap.String("id", d.ID))
	}
	if out.LeveledUp {
		g.logger.Info("level up",
			zap.Int("level", out.Level.Current.Level),
			zap.String("title", out.Level.Current.Title))
	}

	saved, err := g.persister.Save(ctx, out.Snapshot.Progress)
	g.saveErr = err
	if err != nil {
		g.logger.Warn("progress not saved", zap.Error(err))
	}
	out.Snapshot.Progress = saved
	g.snap = out.Snapshot.Clone()
	return out
}

// Reset clears stored progress and restarts the session from defaults.
func (g *Game) Reset(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.persister.Reset(ctx); err != nil {
		return err
	}
	g.snap = engine.NewSnapshot(progress.Default())
	g.saveErr = nil
	g.logger.Info("progress reset")
	return nil
}
