package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default; cobra keeps parsed values
// on the package-level commands between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type env struct {
	db string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{"TERPDEX_DB", "TERPDEX_LOG_LEVEL", "TERPDEX_LOG_FORMAT", "TERPDEX_LOG_FILE", "TERPDEX_CATALOG"} {
		t.Setenv(k, "")
	}
	return env{db: filepath.Join(dir, "terpdex.db")}
}

func (e env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", e.db, "--log-level", "error"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "terpdex (devel)\n", out)
}

func TestAnswer_CorrectStreak(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "answer", "--topic", "Myrcene", "--correct", "--times", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "+10 XP (total 10)")
	assert.Contains(t, out, "+27 XP (total 71)")
	assert.Contains(t, out, "🎯 NICE STREAK! 🎯")
	assert.Contains(t, out, "Achievement unlocked: 🌱 First Steps")
}

func TestAnswer_FlagValidation(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "answer", "--topic", "Myrcene")
	assert.Error(t, err, "one of --correct/--wrong is required")

	_, err = e.run(t, "", "answer", "--topic", "Myrcene", "--correct", "--wrong")
	assert.Error(t, err)

	_, err = e.run(t, "", "answer", "--correct", "--times", "0")
	assert.Error(t, err)
}

func TestAnswer_ProgressPersists(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "answer", "--topic", "Pinene", "--correct")
	require.NoError(t, err)
	out, err := e.run(t, "", "answer", "--topic", "Pinene", "--wrong")
	require.NoError(t, err)
	assert.Contains(t, out, "streak reset (total 10 XP)")

	out, err = e.run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "1 Novice")
	assert.Contains(t, out, "10 (90 to Apprentice)")
	assert.Contains(t, out, "Pinene")
}

func TestMode(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "mode", "aroma")
	require.NoError(t, err)
	assert.Contains(t, out, "Aroma Profile selected (1 of 8 modes tried)")

	_, err = e.run(t, "", "mode", "smell")
	assert.Error(t, err)
}

func TestAchievements(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "answer", "--topic", "Linalool", "--correct")
	require.NoError(t, err)

	out, err := e.run(t, "", "achievements")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] 🌱 First Steps")
	assert.Contains(t, out, "1 / 16 unlocked")
}

func TestReset(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "answer", "--topic", "Linalool", "--correct")
	require.NoError(t, err)

	out, err := e.run(t, "n\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "aborted")

	out, err = e.run(t, "", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "progress reset")

	out, err = e.run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "0 (100 to Apprentice)")
}

func TestExport_JSONToStdout(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "", "answer", "--topic", "Humulene", "--correct")
	require.NoError(t, err)

	out, err := e.run(t, "", "export", "--format", "json", "--output", "-")
	require.NoError(t, err)

	var doc struct {
		Record struct {
			XP             int            `json:"xp"`
			TerpeneCorrect map[string]int `json:"terpeneCorrect"`
		} `json:"record"`
		Unlocked int `json:"unlocked"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 10, doc.Record.XP)
	assert.Equal(t, 1, doc.Record.TerpeneCorrect["Humulene"])
	assert.Equal(t, 1, doc.Unlocked)
}

func TestExport_XLSXFile(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(t.TempDir(), "backup.xlsx")
	_, err := e.run(t, "", "export", "-f", "xlsx", "-o", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestConfigFile_UnknownKey(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\nbogus = 1\n"), 0o600))

	_, err := e.run(t, "", "--config", path, "stats")
	assert.Error(t, err)
}

func TestCatalogFile(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(t.TempDir(), "catalog.json")
	catalog := `[{"id":"one","title":"One","description":"Get one right","requirement":{"type":"correct","value":1}}]`
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))
	t.Setenv("TERPDEX_CATALOG", path)

	out, err := e.run(t, "", "answer", "--topic", "Ocimene", "--correct")
	require.NoError(t, err)
	assert.Contains(t, out, "Achievement unlocked: One")

	out, err = e.run(t, "", "achievements")
	require.NoError(t, err)
	assert.Contains(t, out, "1 / 1 unlocked")
}

func TestTerpenes(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "", "terpenes", "list", "--field", "quick")
	require.NoError(t, err)
	assert.Contains(t, out, "Myrcene")
	assert.Contains(t, out, "10 terpenes")

	out, err = e.run(t, "", "terpenes", "show", "limonene")
	require.NoError(t, err)
	assert.Contains(t, out, "🌿 Limonene")
	assert.Contains(t, out, "Herb Analogs")

	_, err = e.run(t, "", "terpenes", "show", "unobtainium")
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "1\n\n", "preview", "--mode", "aroma", "--count", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1/3")
	assert.Contains(t, out, "(skipped)")
	assert.Contains(t, out, "(input closed)")
	assert.Contains(t, out, "── Summary:")
}

func TestConfigInit(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(t.TempDir(), "conf", "config.toml")

	out, err := e.run(t, "", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `key = "terpene_flashcards_game_data"`)

	_, err = e.run(t, "", "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = e.run(t, "", "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = e.run(t, "", "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, err = e.run(t, "", "--config", path, "stats")
	assert.NoError(t, err)
}
