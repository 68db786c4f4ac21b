// Package ideastore persists Inspiration records in the shared ideas
// table of a SQLite database. It owns the table DDL and basic DML only;
// querying beyond id lookup and listing is left to the consuming tools.
package ideastore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // default database driver
)

// DefaultDriver is the database/sql driver name used unless overridden
// with WithDriver.
const DefaultDriver = "sqlite"

func init() {
	// modernc.org/sqlite registers as "sqlite", which sqlx does not
	// know out of the box; it uses '?' placeholders.
	sqlx.BindDriver(DefaultDriver, sqlx.QUESTION)
}

type openConfig struct {
	driver      string
	busyTimeout int
	mkdirAll    bool
	ping        bool
}

func openDefaults() openConfig {
	return openConfig{
		driver:      DefaultDriver,
		busyTimeout: 10_000,
		ping:        true,
	}
}

// OpenOption customizes Open behaviour.
type OpenOption func(*openConfig)

// WithDriver sets the database/sql driver name. The caller must have
// blank-imported the matching driver. Default: "sqlite".
func WithDriver(name string) OpenOption {
	return func(c *openConfig) { c.driver = name }
}

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds.
// Default: 10000.
func WithBusyTimeout(ms int) OpenOption {
	return func(c *openConfig) { c.busyTimeout = ms }
}

// WithMkdirAll creates missing parent directories of the database path
// before opening.
func WithMkdirAll() OpenOption {
	return func(c *openConfig) { c.mkdirAll = true }
}

// WithoutPing skips the connectivity check after opening.
func WithoutPing() OpenOption {
	return func(c *openConfig) { c.ping = false }
}

// Open opens the SQLite database at path with production pragmas
// applied via Exec: WAL journaling, a busy timeout, foreign keys on,
// and synchronous NORMAL.
func Open(path string, opts ...OpenOption) (*sqlx.DB, error) {
	cfg := openDefaults()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.mkdirAll && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sqlx.Open(cfg.driver, path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout),
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if cfg.ping {
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping database %s: %w", path, err)
		}
	}
	return db, nil
}

// OpenMemory opens an in-memory database for tests. Connections are
// capped at one so every query sees the same in-memory database, and
// the handle is closed via t.Cleanup.
func OpenMemory(t testing.TB, opts ...OpenOption) *sqlx.DB {
	t.Helper()

	db, err := Open(":memory:", opts...)
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}
