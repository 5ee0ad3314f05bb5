package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SOLVER_STRATEGY", "SOLVER_START", "SOLVER_MAX_GUESSES", "WORDS_ANSWERS_FILE",
		"WORDS_ALLOWED_FILE", "SOLVER_CACHE_DSN", "SOLVER_CACHE", "SOLVER_WORKERS",
		"DAILY_SALT", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "entropy", cfg.Strategy)
	assert.Equal(t, 6, cfg.MaxGuesses)
	assert.True(t, cfg.CacheEnabled)
	assert.GreaterOrEqual(t, cfg.Workers, 1)

	start, err := cfg.Start()
	require.NoError(t, err)
	assert.Equal(t, words.MustParse("SLATE"), start)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
strategy: astar
starting_word: crane
max_guesses: 8
astar_branching: 100
cache_dsn: ./data/cache.db
`)
	t.Setenv("SOLVER_STRATEGY", "bayes")
	t.Setenv("SOLVER_WORKERS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bayes", cfg.Strategy, "env wins over file")
	assert.Equal(t, 8, cfg.MaxGuesses)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "./data/cache.db", cfg.CacheDSN)
	assert.Equal(t, 100.0, cfg.StrategyOptions().AStarBranching)

	start, err := cfg.Start()
	require.NoError(t, err)
	assert.Equal(t, words.MustParse("CRANE"), start)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"strategy":    "strategy: minimax\n",
		"max_guesses": "max_guesses: 0\n",
		"start":       "starting_word: toolong\n",
		"branching":   "astar_branching: 1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadEnvNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLVER_MAX_GUESSES", "six")
	_, err := Load("")
	assert.ErrorContains(t, err, "SOLVER_MAX_GUESSES")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStart_EmptyLetsStrategyChoose(t *testing.T) {
	cfg := Default()
	cfg.StartingWord = ""
	require.NoError(t, cfg.Validate())
	start, err := cfg.Start()
	require.NoError(t, err)
	assert.Empty(t, start)
}
