// internal/store/sqlite.go
//
// SQLite-backed decision cache.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Get/Put of decisions; the first decision for a key wins.
//
// A SQLite cache lets repeated batch runs over the same vocabulary skip the
// expensive early rounds entirely.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLite is a Store persisted in a SQLite database file.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

/**
 * OpenSQLite opens (and creates if missing) the cache database at dsn and
 * applies pending migrations.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/cache.db).
 * - Configures busy timeout and WAL journaling mode.
 *
 * @param dsn Database path.
 * @returns *SQLite ready for Get/Put.
 */
func OpenSQLite(dsn string, logger zerolog.Logger) (*SQLite, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	s := &SQLite{db: db, log: logger}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

/**
 * migrate applies the embedded migrations/*.sql files.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each file in lexical order inside its own transaction.
 * - Skips files already applied.
 */
func (s *SQLite) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, "migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := s.db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			s.log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		s.log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Get returns the decision recorded for key.
func (s *SQLite) Get(ctx context.Context, key string) (words.Word, error) {
	var guess string
	err := s.db.QueryRowContext(ctx, `SELECT guess FROM decisions WHERE key=?`, key).Scan(&guess)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return words.Parse(guess)
}

/**
 * Put records a decision.
 *
 * - Respects the primary key on key.
 * - If a row already exists, the insert is ignored (no error).
 */
func (s *SQLite) Put(ctx context.Context, key string, guess words.Word) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO decisions (key, guess) VALUES (?, ?)`,
		key, guess.String(),
	)
	return err
}

// Len is the number of recorded decisions.
func (s *SQLite) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM decisions`).Scan(&n)
	return n, err
}

func (s *SQLite) Close() error { return s.db.Close() }
