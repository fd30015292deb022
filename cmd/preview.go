package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/terpdex/terpdex/internal/engine"
	"github.com/terpdex/terpdex/internal/game"
	"github.com/terpdex/terpdex/internal/persist"
	"github.com/terpdex/terpdex/internal/store"
	"github.com/terpdex/terpdex/internal/terpenes"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer a few questions on stdin (no database)",
	Long: `Ask multiple-choice questions on plain stdin/stdout.

Progress lives in memory only: no database, nothing is saved. XP and
achievements are computed from a fresh profile so you can see how
scoring behaves.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("mode", "random", "Question mode")
	previewCmd.Flags().Int("count", 5, "Number of questions")
	previewCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one from the clock)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	modeVal, _ := cmd.Flags().GetString("mode")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")

	info, ok := terpenes.LookupMode(modeVal)
	if !ok {
		return fmt.Errorf("unknown mode %q", modeVal)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	deck, err := terpenes.NewDeck(terpenes.Builtin())
	if err != nil {
		return err
	}

	logger, err := newLogger(false)
	if err != nil {
		return err
	}
	defer logger.Sync()
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	kv := store.NewMemoryKV()
	defer kv.Close()
	g := game.New(ctx, persist.New(kv, persist.WithLogger(logger)), logger,
		game.WithEngine(engine.New(engine.WithCatalog(catalog))))
	g.SelectMode(ctx, string(info.ID))

	w := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(w, "Mode: %s %s\n\n", info.Icon, info.Label)

	for i := 1; i <= count; i++ {
		q, err := deck.NewQuestion(info.ID, rng)
		if err != nil {
			return err
		}
		choices, correctIdx := deck.Choices(q, rng)

		fmt.Fprintf(w, "── Question %d/%d: %s ──\n", i, count, q.Topic)
		fmt.Fprintln(w, q.Prompt)
		for j, c := range choices {
			fmt.Fprintf(w, "  %d) %s\n", j+1, c)
		}

		fmt.Fprint(w, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(w, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprintln(w, "(skipped)")
			fmt.Fprintln(w)
			continue
		}

		picked, err := strconv.Atoi(answer)
		correct := err == nil && picked-1 == correctIdx
		if correct {
			fmt.Fprintln(w, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(w, "\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}

		printOutcome(w, g.Answer(ctx, correct, q.Topic))
		fmt.Fprintln(w)
	}

	snap := g.Snapshot()
	fmt.Fprintf(w, "── Summary: %d/%d correct, %d XP ──\n", snap.Session.Score, snap.Session.Total, snap.Progress.XP)
	return nil
}
