package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
)

type entryRepository struct {
	db *database.DB
}

const entryColumns = `id, worker_id, worker_name, worker_key, date, sleep_h, sleep_m, sleep_text,
	duration_min, status, source, chat_id, file_id, notes, raw_text, image_url, pdf_url, created_at`

func scanEntry(row pgx.Row) (entry.Entry, error) {
	var e entry.Entry
	err := row.Scan(
		&e.ID, &e.WorkerID, &e.WorkerName, &e.WorkerKey, &e.Date, &e.SleepHours, &e.SleepMinutes, &e.SleepText,
		&e.DurationMin, &e.Status, &e.Source, &e.ChatID, &e.FileID, &e.Notes, &e.RawText, &e.ImageURL, &e.PDFURL,
		&e.CreatedAt,
	)
	e.Date = e.Date.UTC()
	return e, err
}

// Create implements entry.EntryRepository.
func (r *entryRepository) Create(ctx context.Context, e entry.Entry) (entry.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers_sleep_entries (
			id, worker_id, worker_name, worker_key, date, sleep_h, sleep_m, sleep_text,
			duration_min, status, source, chat_id, file_id, notes, raw_text, image_url, pdf_url, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
	`

	_, err := q.Exec(ctx, query,
		e.ID, e.WorkerID, e.WorkerName, e.WorkerKey, e.Date, e.SleepHours, e.SleepMinutes, e.SleepText,
		e.DurationMin, string(e.Status), e.Source, e.ChatID, e.FileID, e.Notes, e.RawText, e.ImageURL, e.PDFURL,
		e.CreatedAt,
	)
	if err != nil {
		return entry.Entry{}, database.Wrap("create entry", err)
	}
	return e, nil
}

// ListByDate implements entry.EntryRepository.
func (r *entryRepository) ListByDate(ctx context.Context, date time.Time) ([]entry.Entry, error) {
	return r.ListByRange(ctx, date, date.AddDate(0, 0, 1))
}

// ListByRange implements entry.EntryRepository.
func (r *entryRepository) ListByRange(ctx context.Context, from, to time.Time) ([]entry.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + `
		FROM workers_sleep_entries
		WHERE date >= $1 AND date < $2
		ORDER BY date, worker_key, created_at`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, database.Wrap("list entries", err)
	}
	defer rows.Close()

	var out []entry.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, database.Wrap("scan entry", err)
		}
		out = append(out, e)
	}
	return out, database.Wrap("list entries", rows.Err())
}

// CountByRange implements entry.EntryRepository.
func (r *entryRepository) CountByRange(ctx context.Context, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var n int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM workers_sleep_entries WHERE date >= $1 AND date < $2`,
		from, to,
	).Scan(&n)
	if err != nil {
		return 0, database.Wrap("count entries", err)
	}
	return n, nil
}

// DeleteBySource implements entry.EntryRepository.
func (r *entryRepository) DeleteBySource(ctx context.Context, source string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workers_sleep_entries WHERE source = $1`, source)
	if err != nil {
		return 0, database.Wrap("delete entries by source", err)
	}
	return tag.RowsAffected(), nil
}

func NewEntryRepository(db *database.DB) entry.EntryRepository {
	return &entryRepository{db: db}
}
