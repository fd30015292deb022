package cmd

import (
	"github.com/spf13/cobra"

	"github.com/terpdex/terpdex/internal/config"
	"github.com/terpdex/terpdex/internal/store"
)

// cfg is the resolved configuration for the running command.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "terpdex",
	Short: "Terpene flashcards with levels, streaks and achievements",
	Long: "terpdex is a terminal study tool for memorizing terpene aromas, effects, " +
		"pairings and menu items. Correct answers earn XP toward ten levels and unlock achievements.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, cfg.Play.StudyType, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TERPDEX_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/terpdex/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(terpenesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings: defaults, then the config file, then .env
// and TERPDEX_* variables, then flags.
func loadConfig(cmd *cobra.Command) error {
	config.LoadDotEnv()

	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	c = config.ApplyEnv(c)

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.Logging.Level = lvl
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		c.Storage.DB = db
	}
	cfg = c
	return nil
}

// resolveDBPath returns the database path from --db or config (highest
// priority), then TERPDEX_DB, then the default XDG path.
func resolveDBPath() (string, error) {
	if p := cfg.Storage.DB; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
