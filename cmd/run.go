package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/terpdex/terpdex/internal/achievements"
	"github.com/terpdex/terpdex/internal/app"
	"github.com/terpdex/terpdex/internal/engine"
	"github.com/terpdex/terpdex/internal/game"
	"github.com/terpdex/terpdex/internal/logging"
	"github.com/terpdex/terpdex/internal/persist"
	"github.com/terpdex/terpdex/internal/screens/quiz"
	"github.com/terpdex/terpdex/internal/store"
	"github.com/terpdex/terpdex/internal/terpenes"
)

// session bundles what every stateful command needs.
type session struct {
	store   *store.Store
	adapter *persist.Adapter
	game    *game.Game
	logger  *zap.Logger
}

// openSession opens the store and loads saved progress. When tui is set,
// logs go to a file so they do not draw over the alt screen.
func openSession(cmd *cobra.Command, tui bool) (*session, error) {
	logger, err := newLogger(tui)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))

	catalog, err := loadCatalog()
	if err != nil {
		st.Close()
		return nil, err
	}

	adapter := persist.New(st.KV(),
		persist.WithKey(cfg.Storage.Key),
		persist.WithLogger(logger))
	g := game.New(cmd.Context(), adapter, logger,
		game.WithEngine(engine.New(engine.WithCatalog(catalog))))

	return &session{store: st, adapter: adapter, game: g, logger: logger}, nil
}

func (s *session) Close() error {
	_ = s.logger.Sync()
	return s.store.Close()
}

func newLogger(tui bool) (*zap.Logger, error) {
	opts := logging.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.File,
	}
	if tui && opts.OutputPath == "" {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		opts.OutputPath = filepath.Join(dir, "terpdex.log")
	}
	return logging.New(opts)
}

// loadCatalog returns the built-in catalog unless a replacement file is
// configured.
func loadCatalog() ([]achievements.Definition, error) {
	path := cfg.Achievements.CatalogFile
	if path == "" {
		return achievements.Catalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open achievement catalog: %w", err)
	}
	defer f.Close()

	defs, err := achievements.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("load achievement catalog %s: %w", path, err)
	}
	return defs, nil
}

// runApp opens the store, builds dependencies, and launches the TUI. An
// empty mode opens the mode menu.
func runApp(cmd *cobra.Command, studyType, mode string) error {
	study, err := quiz.ParseStudyType(studyType)
	if err != nil {
		return err
	}
	var start terpenes.Mode
	if mode != "" {
		info, ok := terpenes.LookupMode(mode)
		if !ok {
			return fmt.Errorf("unknown mode %q", mode)
		}
		start = info.ID
	}

	deck, err := terpenes.NewDeck(terpenes.Builtin())
	if err != nil {
		return err
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	preselect, _ := terpenes.LookupMode(cfg.Play.Mode)
	return app.Run(s.game, deck, quiz.Options{
		StudyType:        study,
		Mode:             start,
		Preselect:        preselect.ID,
		XPToast:          time.Duration(cfg.Play.XPToastMillis) * time.Millisecond,
		AchievementToast: time.Duration(cfg.Play.AchievementToastMs) * time.Millisecond,
		Logger:           s.logger,
	})
}
