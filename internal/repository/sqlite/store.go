// Package sqlite implements the repositories on SQLite, schema-compatible
// with the Cloudflare D1 deployment the dashboard was first built on.
//
// Dates are stored as YYYY-MM-DD text and timestamps as RFC 3339 text, so
// lexical order equals chronological order.
package sqlite

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store owns the connection and serialises writers.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New migrates db and returns a Store over it.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS workers (
		id TEXT PRIMARY KEY,
		worker_name TEXT NOT NULL,
		worker_key TEXT NOT NULL UNIQUE,
		country_code TEXT NOT NULL DEFAULT 'PE',
		timezone TEXT NOT NULL DEFAULT 'America/Lima',
		required_schedule TEXT NOT NULL DEFAULT 'MON_FRI',
		exclude_holidays INTEGER NOT NULL DEFAULT 1,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workers_sleep_entries (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL REFERENCES workers(id),
		worker_name TEXT NOT NULL,
		worker_key TEXT NOT NULL,
		date TEXT NOT NULL,
		sleep_h INTEGER NOT NULL DEFAULT 0,
		sleep_m INTEGER NOT NULL DEFAULT 0,
		sleep_text TEXT NOT NULL,
		duration_min INTEGER,
		status TEXT NOT NULL,
		source TEXT NOT NULL DEFAULT 'manual',
		chat_id TEXT,
		file_id TEXT,
		notes TEXT,
		raw_text TEXT,
		image_url TEXT,
		pdf_url TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sleep_entries_date
		ON workers_sleep_entries(date);
	CREATE INDEX IF NOT EXISTS idx_sleep_entries_worker_date
		ON workers_sleep_entries(worker_key, date);
	CREATE INDEX IF NOT EXISTS idx_sleep_entries_source
		ON workers_sleep_entries(source);

	CREATE TABLE IF NOT EXISTS holidays (
		date TEXT NOT NULL,
		country_code TEXT NOT NULL,
		name TEXT NOT NULL,
		is_required INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (date, country_code)
	);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return database.Wrap("migrate schema", err)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(validator.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(validator.DateLayout, s)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
