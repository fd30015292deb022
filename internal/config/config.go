// Package config loads terpdex settings from a TOML file, .env and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all terpdex configuration.
type Config struct {
	Storage      StorageConfig      `toml:"storage"`
	Logging      LoggingConfig      `toml:"logging"`
	Play         PlayConfig         `toml:"play"`
	Achievements AchievementsConfig `toml:"achievements"`
}

// StorageConfig selects the database and record key.
type StorageConfig struct {
	// DB is the SQLite file. Empty means the XDG data directory default.
	DB  string `toml:"db"`
	Key string `toml:"key"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File receives TUI logs; the alt screen owns stderr while playing.
	File string `toml:"file"`
}

// PlayConfig holds quiz screen defaults.
type PlayConfig struct {
	StudyType          string `toml:"study_type"`
	Mode               string `toml:"mode"`
	XPToastMillis      int    `toml:"xp_toast_ms"`
	AchievementToastMs int    `toml:"achievement_toast_ms"`
}

// AchievementsConfig points at an optional replacement catalog.
type AchievementsConfig struct {
	CatalogFile string `toml:"catalog_file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Key: "terpene_flashcards_game_data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Play: PlayConfig{
			StudyType:          "quiz",
			Mode:               "random",
			XPToastMillis:      1500,
			AchievementToastMs: 3000,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/terpdex/config.toml, falling back
// to ~/.config/terpdex/config.toml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "terpdex", "config.toml")
}

// Load reads the TOML file at path over the defaults. An empty path means
// DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// LoadDotEnv loads .env from the working directory if present. Variables
// already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overrides cfg from TERPDEX_* environment variables.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("TERPDEX_DB"); v != "" {
		cfg.Storage.DB = v
	}
	if v := os.Getenv("TERPDEX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TERPDEX_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TERPDEX_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("TERPDEX_CATALOG"); v != "" {
		cfg.Achievements.CatalogFile = v
	}
	return cfg
}

// Save writes cfg as TOML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
