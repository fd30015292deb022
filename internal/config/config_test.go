package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[storage]
db = "/tmp/t.db"

[logging]
level = "debug"

[play]
study_type = "flashcard"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.DB != "/tmp/t.db" {
		t.Errorf("Storage.DB = %q", cfg.Storage.DB)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("unset field lost its default: Format = %q", cfg.Logging.Format)
	}
	if cfg.Play.StudyType != "flashcard" || cfg.Play.Mode != "random" {
		t.Errorf("Play = %+v", cfg.Play)
	}
	if cfg.Storage.Key != "terpene_flashcards_game_data" {
		t.Errorf("Storage.Key = %q", cfg.Storage.Key)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[storage\ndb = 1"},
		{"unknown key", "[storage]\ndatabase = \"x\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TERPDEX_DB", "/data/x.db")
	t.Setenv("TERPDEX_LOG_LEVEL", "warn")
	t.Setenv("TERPDEX_LOG_FORMAT", "json")
	t.Setenv("TERPDEX_LOG_FILE", "")

	cfg := ApplyEnv(DefaultConfig())
	if cfg.Storage.DB != "/data/x.db" || cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Logging.File != "" {
		t.Errorf("empty env var should not override, got %q", cfg.Logging.File)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := DefaultConfig()
	want.Play.Mode = "aroma"
	want.Achievements.CatalogFile = "/etc/terpdex/catalog.json"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := DefaultPath(), filepath.Join(dir, "terpdex", "config.toml"); got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}
