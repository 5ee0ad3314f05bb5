// internal/config/config.go
//
// Solver configuration.
// Responsibilities:
//   - Defaults for every setting.
//   - Loading from a YAML file, then environment overrides.
//   - Validation (strategy names, budgets, word shape).
//
// Priority: flags (applied by the CLI) > env > file > defaults.

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Config holds every tunable of the CLI and solver.
type Config struct {
	Strategy     string `yaml:"strategy" validate:"required,oneof=baseline entropy bayes astar"`
	StartingWord string `yaml:"starting_word" validate:"omitempty,word"`
	MaxGuesses   int    `yaml:"max_guesses" validate:"min=1,max=20"`

	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`

	CacheEnabled bool   `yaml:"cache_enabled"`
	CacheDSN     string `yaml:"cache_dsn"` // Empty keeps the cache in memory.

	Workers int `yaml:"workers" validate:"min=1"`

	EntropySmallPool     int     `yaml:"entropy_small_pool" validate:"min=1"`
	AStarBranching       float64 `yaml:"astar_branching" validate:"gt=1"`
	BaselineIntersecting bool    `yaml:"baseline_intersecting"`

	DailySalt string `yaml:"daily_salt"`
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	so := strategy.DefaultOptions()
	return Config{
		Strategy:             strategy.NameEntropy,
		StartingWord:         "SLATE",
		MaxGuesses:           game.DefaultMaxGuesses,
		CacheEnabled:         true,
		Workers:              runtime.GOMAXPROCS(0),
		EntropySmallPool:     so.EntropySmallPool,
		AStarBranching:       so.AStarBranching,
		BaselineIntersecting: so.BaselineIntersecting,
		DailySalt:            "wordle-daily",
		LogLevel:             "info",
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("word", validateWord)
}

// validateWord accepts anything words.Parse accepts.
func validateWord(fl validator.FieldLevel) bool {
	_, err := words.Parse(fl.Field().String())
	return err == nil
}

// Load builds a Config with priority env > file > defaults.
// An empty path skips the file; a path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnv overrides cfg from the environment. Malformed numbers are errors
// rather than silently ignored.
func applyEnv(cfg *Config) error {
	str := map[string]*string{
		"SOLVER_STRATEGY":    &cfg.Strategy,
		"SOLVER_START":       &cfg.StartingWord,
		"WORDS_ANSWERS_FILE": &cfg.AnswersFile,
		"WORDS_ALLOWED_FILE": &cfg.AllowedFile,
		"SOLVER_CACHE_DSN":   &cfg.CacheDSN,
		"DAILY_SALT":         &cfg.DailySalt,
		"LOG_LEVEL":          &cfg.LogLevel,
	}
	for k, dst := range str {
		if v, ok := os.LookupEnv(k); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	ints := map[string]*int{
		"SOLVER_MAX_GUESSES": &cfg.MaxGuesses,
		"SOLVER_WORKERS":     &cfg.Workers,
	}
	for k, dst := range ints {
		v := os.Getenv(k)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", k, err)
		}
		*dst = n
	}

	if v := os.Getenv("SOLVER_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: SOLVER_CACHE: %w", err)
		}
		cfg.CacheEnabled = b
	}
	return nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: %s fails %q (got %v): %w", fe.Field(), fe.Tag(), fe.Value(), err)
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Start parses StartingWord; empty means "let the strategy choose".
func (c Config) Start() (words.Word, error) {
	if c.StartingWord == "" {
		return "", nil
	}
	return words.Parse(c.StartingWord)
}

// Words returns the word list source described by c.
func (c Config) Words() words.Source {
	return words.Source{AnswersFile: c.AnswersFile, AllowedFile: c.AllowedFile}
}

// StrategyOptions returns the strategy tuning described by c.
func (c Config) StrategyOptions() strategy.Options {
	return strategy.Options{
		EntropySmallPool:     c.EntropySmallPool,
		AStarBranching:       c.AStarBranching,
		BaselineIntersecting: c.BaselineIntersecting,
	}
}
