package postgresql

import (
	"context"

	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS workers (
	id                UUID PRIMARY KEY,
	worker_name       TEXT NOT NULL,
	worker_key        TEXT NOT NULL UNIQUE,
	country_code      TEXT NOT NULL DEFAULT 'PE',
	timezone          TEXT NOT NULL DEFAULT 'America/Lima',
	required_schedule TEXT NOT NULL DEFAULT 'MON_FRI',
	exclude_holidays  BOOLEAN NOT NULL DEFAULT TRUE,
	is_active         BOOLEAN NOT NULL DEFAULT TRUE,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS workers_sleep_entries (
	id           UUID PRIMARY KEY,
	worker_id    UUID NOT NULL REFERENCES workers(id),
	worker_name  TEXT NOT NULL,
	worker_key   TEXT NOT NULL,
	date         DATE NOT NULL,
	sleep_h      INTEGER NOT NULL DEFAULT 0,
	sleep_m      INTEGER NOT NULL DEFAULT 0,
	sleep_text   TEXT NOT NULL,
	duration_min INTEGER,
	status       TEXT NOT NULL CHECK (status IN ('OK', 'PENDING')),
	source       TEXT NOT NULL DEFAULT 'manual',
	chat_id      TEXT,
	file_id      TEXT,
	notes        TEXT,
	raw_text     TEXT,
	image_url    TEXT,
	pdf_url      TEXT,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_sleep_entries_date ON workers_sleep_entries(date);
CREATE INDEX IF NOT EXISTS idx_sleep_entries_worker_date ON workers_sleep_entries(worker_key, date);
CREATE INDEX IF NOT EXISTS idx_sleep_entries_source ON workers_sleep_entries(source);

CREATE TABLE IF NOT EXISTS holidays (
	date         DATE NOT NULL,
	country_code TEXT NOT NULL,
	name         TEXT NOT NULL,
	is_required  BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (date, country_code)
);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	_, err := db.Exec(ctx, schema)
	return database.Wrap("migrate schema", err)
}
