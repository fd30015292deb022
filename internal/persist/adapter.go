// Package persist stores progress.State as a single JSON record in a
// key-value store.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/terpdex/terpdex/internal/progress"
	"github.com/terpdex/terpdex/internal/store"
)

// DefaultKey is the storage key of the progress record.
const DefaultKey = "terpene_flashcards_game_data"

// Persister is what a host session needs from storage.
type Persister interface {
	Load(ctx context.Context) progress.State
	Save(ctx context.Context, st progress.State) (progress.State, error)
	Reset(ctx context.Context) error
}

// Adapter implements Persister over a store.KV.
type Adapter struct {
	kv     store.KV
	key    string
	logger *zap.Logger
	now    func() time.Time
}

var _ Persister = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(a *Adapter) { a.key = key }
}

// WithLogger sets the logger used for load and save failures.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// WithClock sets the time source for LastPlayed.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// New creates an Adapter over kv.
func New(kv store.KV, opts ...Option) *Adapter {
	a := &Adapter{
		kv:     kv,
		key:    DefaultKey,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load returns the stored state, or progress.Default() when the record is
// missing, unreadable or invalid. It never fails.
func (a *Adapter) Load(ctx context.Context) progress.State {
	raw, ok, err := a.kv.Get(ctx, a.key)
	if err != nil {
		a.logger.Warn("load progress: storage unavailable, using defaults",
			zap.String("key", a.key), zap.Error(err))
		return progress.Default()
	}
	if !ok {
		a.logger.Debug("load progress: no saved record", zap.String("key", a.key))
		return progress.Default()
	}

	rec, err := decodeRecord([]byte(raw))
	if err != nil {
		a.logger.Warn("load progress: corrupt record, using defaults",
			zap.String("key", a.key), zap.Error(err))
		return progress.Default()
	}
	return rec.State()
}

// Save stamps LastPlayed and writes st. On success it returns the stamped
// state. On failure it returns st unchanged with the error; the previously
// stored record is left as it was.
func (a *Adapter) Save(ctx context.Context, st progress.State) (progress.State, error) {
	stamped := st.Clone()
	now := a.now().UTC()
	stamped.LastPlayed = &now

	data, err := json.Marshal(FromState(stamped))
	if err != nil {
		a.logger.Warn("save progress: encode failed", zap.Error(err))
		return st, fmt.Errorf("encode progress: %w", err)
	}

	if err := a.kv.Set(ctx, a.key, string(data)); err != nil {
		a.logger.Warn("save progress: write failed", zap.String("key", a.key), zap.Error(err))
		return st, fmt.Errorf("write progress: %w", err)
	}
	return stamped, nil
}

// Reset deletes the stored record.
func (a *Adapter) Reset(ctx context.Context) error {
	if err := a.kv.Delete(ctx, a.key); err != nil {
		a.logger.Warn("reset progress failed", zap.String("key", a.key), zap.Error(err))
		return fmt.Errorf("reset progress: %w", err)
	}
	a.logger.Info("progress reset", zap.String("key", a.key))
	return nil
}

// Export returns the stored record for a backup. Unlike Load it reports
// storage and decode failures, so a backup never silently contains
// defaults in place of real data. A missing record exports as defaults.
func (a *Adapter) Export(ctx context.Context) (Record, error) {
	raw, ok, err := a.kv.Get(ctx, a.key)
	if err != nil {
		return Record{}, fmt.Errorf("read progress: %w", err)
	}
	if !ok {
		return FromState(progress.Default()), nil
	}
	rec, err := decodeRecord([]byte(raw))
	if err != nil {
		return Record{}, fmt.Errorf("decode progress: %w", err)
	}
	return FromState(rec.State()), nil
}
