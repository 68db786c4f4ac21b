package ideastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nomoos/prismq-idea/idea"
	"github.com/nomoos/prismq-idea/logger"
)

// ErrNotFound is returned when no idea exists for the requested id.
var ErrNotFound = errors.New("idea not found")

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 20

// schema is the complete DDL for the ideas table. Collection fields are
// JSON in TEXT columns; ids and timestamps are assigned by the engine.
// The trigger keeps updated_at current without recursing (SQLite leaves
// recursive_triggers off by default).
const schema = `
CREATE TABLE IF NOT EXISTS ideas (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    title              TEXT NOT NULL,
    description        TEXT NOT NULL DEFAULT '',
    content            TEXT NOT NULL DEFAULT '',
    keywords           TEXT NOT NULL DEFAULT '[]',
    source_type        TEXT NOT NULL DEFAULT 'unknown',
    metadata           TEXT NOT NULL DEFAULT '{}',
    source_id          TEXT,
    source_url         TEXT,
    source_created_by  TEXT,
    source_created_at  TEXT,
    score              INTEGER,
    category           TEXT,
    relevance_scores   TEXT NOT NULL DEFAULT '{}',
    performance_scores TEXT NOT NULL DEFAULT '{}',
    created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TRIGGER IF NOT EXISTS ideas_touch_updated_at AFTER UPDATE ON ideas BEGIN
    UPDATE ideas SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
END;
`

// StoredIdea is an Inspiration as read back from the ideas table,
// carrying the storage-assigned identity and timestamps.
type StoredIdea struct {
	idea.Inspiration

	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Store handles database operations for idea records.
type Store struct {
	db  *sqlx.DB
	log logger.Logger
}

// New creates a store over an open database handle. A nil log disables
// logging.
func New(db *sqlx.DB, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{db: db, log: log}
}

// EnsureSchema creates the ideas table and its trigger if missing. Safe
// to call on every start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure ideas schema: %w", err)
	}
	return nil
}

// Insert validates rec and appends it to the ideas table, returning the
// engine-assigned id. The record itself is not mutated.
func (s *Store) Insert(ctx context.Context, rec *idea.Inspiration) (int64, error) {
	if rec == nil {
		return 0, errors.New("insert idea: nil record")
	}
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO ideas (
			title, description, content, keywords, source_type, metadata,
			source_id, source_url, source_created_by, source_created_at,
			score, category, relevance_scores, performance_scores
		) VALUES (
			:title, :description, :content, :keywords, :source_type, :metadata,
			:source_id, :source_url, :source_created_by, :source_created_at,
			:score, :category, :relevance_scores, :performance_scores
		)
	`

	res, err := s.db.NamedExecContext(ctx, query, rec)
	if err != nil {
		return 0, fmt.Errorf("insert idea: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted idea id: %w", err)
	}

	s.log.Debug("idea stored",
		logger.Int64("id", id),
		logger.String("source_type", rec.SourceType.String()),
		logger.String("title", rec.Title))
	return id, nil
}

// GetByID retrieves one idea. Returns ErrNotFound when the id does not
// exist.
func (s *Store) GetByID(ctx context.Context, id int64) (*StoredIdea, error) {
	query := `
		SELECT id, title, description, content, keywords, source_type, metadata,
		       source_id, source_url, source_created_by, source_created_at,
		       score, category, relevance_scores, performance_scores,
		       created_at, updated_at
		FROM ideas
		WHERE id = ?
	`

	var row StoredIdea
	err := s.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get idea %d: %w", id, err)
	}
	return &row, nil
}

// List retrieves ideas newest first. A non-positive limit falls back to
// DefaultListLimit; a negative offset is treated as zero.
func (s *Store) List(ctx context.Context, limit, offset int) ([]*StoredIdea, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, title, description, content, keywords, source_type, metadata,
		       source_id, source_url, source_created_by, source_created_at,
		       score, category, relevance_scores, performance_scores,
		       created_at, updated_at
		FROM ideas
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`

	rows := make([]*StoredIdea, 0, limit)
	if err := s.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	return rows, nil
}

// Count returns the number of stored ideas.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM ideas`); err != nil {
		return 0, fmt.Errorf("count ideas: %w", err)
	}
	return n, nil
}
