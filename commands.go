// commands.go
//
// Cobra command tree and the shared set-up every command needs.
//   - Persistent flags override config file and environment values.
//   - newApp loads the vocabulary and wires cache, metrics and solver.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var (
	configPath     string
	flagStrategy   string
	flagStart      string
	flagMaxGuesses int
	flagLogLevel   string
	flagNoCache    bool

	// cfg is resolved once per invocation by loadConfig.
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "wordle-solver",
		Short: "Solve Wordle puzzles with frequency, entropy, Bayesian or A* strategies",
		Long: `wordle-solver recommends guesses for Wordle-style puzzles.

It can play against a known target (simulate), evaluate a strategy over the
whole answer list (batch), or coach a live game from the feedback you type
in (tutor).`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	// --- Playing ---
	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Play one game against a known or daily target",
		Args:  cobra.NoArgs,
		RunE:  runSimulate, // Defined in cmd_simulate.go
	}
	tutorCmd = &cobra.Command{
		Use:   "tutor",
		Short: "Recommend guesses for a live game from typed feedback",
		Args:  cobra.NoArgs,
		RunE:  runTutor, // Defined in cmd_tutor.go
	}

	// --- Evaluation ---
	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Simulate every answer and summarize the results",
		Args:  cobra.NoArgs,
		RunE:  runBatch, // Defined in cmd_batch.go
	}

	// --- Utilities ---
	scoreCmd = &cobra.Command{
		Use:   "score GUESS TARGET",
		Short: "Show the feedback GUESS would get against TARGET",
		Args:  cobra.ExactArgs(2),
		RunE:  runScore, // Defined in cmd_score.go
	}
	openersCmd = &cobra.Command{
		Use:   "openers",
		Short: "Rank opening guesses by expected remaining answers",
		Args:  cobra.NoArgs,
		RunE:  runOpeners, // Defined in cmd_score.go
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file (default $SOLVER_CONFIG)")
	pf.StringVarP(&flagStrategy, "strategy", "s", "", "baseline | entropy | bayes | astar")
	pf.StringVar(&flagStart, "start", "", `starting word ("-" lets the strategy choose)`)
	pf.IntVar(&flagMaxGuesses, "max-guesses", 0, "guess budget per game")
	pf.StringVar(&flagLogLevel, "log-level", "", "trace | debug | info | warn | error")
	pf.BoolVar(&flagNoCache, "no-cache", false, "disable the decision cache")

	simulateCmd.Flags().String("target", "", "target word")
	simulateCmd.Flags().Bool("daily", false, "use today's daily target")
	simulateCmd.Flags().String("date", "", "daily target for this date (YYYY-MM-DD)")

	batchCmd.Flags().IntP("limit", "n", 0, "only the first N answers (0 = all)")
	batchCmd.Flags().IntP("workers", "w", 0, "concurrent games (default from config)")
	batchCmd.Flags().String("metrics-file", "", "write prometheus metrics to this file")
	batchCmd.Flags().Bool("progress", true, "show a progress bar on stderr")
	batchCmd.Flags().Bool("failures", false, "list targets that were not solved")

	openersCmd.Flags().IntP("top", "n", 10, "number of openers to show")

	rootCmd.AddCommand(simulateCmd, tutorCmd, batchCmd, scoreCmd, openersCmd)
}

// loadConfig resolves defaults < file < env < flags into cfg.
func loadConfig(cmd *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		path = os.Getenv("SOLVER_CONFIG")
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		c.Strategy = flagStrategy
	}
	if flags.Changed("start") {
		c.StartingWord = flagStart
		if flagStart == "-" {
			c.StartingWord = ""
		}
	}
	if flags.Changed("max-guesses") {
		c.MaxGuesses = flagMaxGuesses
	}
	if flags.Changed("log-level") {
		c.LogLevel = flagLogLevel
	}
	if flagNoCache {
		c.CacheEnabled = false
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		zerolog.SetGlobalLevel(lvl)
	}
	cfg = c
	return nil
}

// app bundles what the game-playing commands share.
type app struct {
	vocab   *words.Vocabulary
	solver  *solver.Solver
	cache   store.Store
	metrics *metrics.Metrics
}

func loadVocab() (*words.Vocabulary, error) {
	v, err := words.Load(cfg.Words())
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}
	answers, guesses := v.Stats()
	log.Debug().Int("answers", answers).Int("guesses", guesses).Str("fingerprint", v.Fingerprint()).Msg("vocabulary loaded")
	return v, nil
}

func newApp() (*app, error) {
	v, err := loadVocab()
	if err != nil {
		return nil, err
	}
	start, err := cfg.Start()
	if err != nil {
		return nil, err
	}

	a := &app{vocab: v, metrics: metrics.New()}
	if cfg.CacheEnabled {
		if cfg.CacheDSN != "" {
			sq, err := store.OpenSQLite(cfg.CacheDSN, log.Logger)
			if err != nil {
				return nil, fmt.Errorf("open cache %s: %w", cfg.CacheDSN, err)
			}
			a.cache = sq
		} else {
			a.cache = store.NewMemoryStore()
		}
	}

	a.solver, err = solver.New(v, solver.Options{
		Strategy:        cfg.Strategy,
		StartingWord:    start,
		MaxGuesses:      cfg.MaxGuesses,
		StrategyOptions: cfg.StrategyOptions(),
		Cache:           a.cache,
		Metrics:         a.metrics,
		Logger:          log.Logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) Close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			log.Warn().Err(err).Msg("close cache")
		}
	}
}
