package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
)

type entryRepository struct {
	*Store
}

func NewEntryRepository(s *Store) entry.EntryRepository {
	return &entryRepository{Store: s}
}

const entryColumns = `id, worker_id, worker_name, worker_key, date, sleep_h, sleep_m, sleep_text,
	duration_min, status, source, chat_id, file_id, notes, raw_text, image_url, pdf_url, created_at`

func scanEntry(row rowScanner) (entry.Entry, error) {
	var (
		e                                             entry.Entry
		date, status, createdAt                       string
		duration                                      sql.NullInt64
		chatID, fileID, notes, rawText, image, pdfURL sql.NullString
		err                                           error
	)
	if err = row.Scan(
		&e.ID, &e.WorkerID, &e.WorkerName, &e.WorkerKey, &date, &e.SleepHours, &e.SleepMinutes, &e.SleepText,
		&duration, &status, &e.Source, &chatID, &fileID, &notes, &rawText, &image, &pdfURL, &createdAt,
	); err != nil {
		return entry.Entry{}, err
	}

	if e.Date, err = parseDate(date); err != nil {
		return entry.Entry{}, err
	}
	if e.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return entry.Entry{}, err
	}
	if duration.Valid {
		d := int(duration.Int64)
		e.DurationMin = &d
	}
	e.Status = entry.Status(status)
	e.ChatID = stringPtr(chatID)
	e.FileID = stringPtr(fileID)
	e.Notes = stringPtr(notes)
	e.RawText = stringPtr(rawText)
	e.ImageURL = stringPtr(image)
	e.PDFURL = stringPtr(pdfURL)
	return e, nil
}

// Create implements entry.EntryRepository.
func (r *entryRepository) Create(ctx context.Context, e entry.Entry) (entry.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var duration sql.NullInt64
	if e.DurationMin != nil {
		duration = sql.NullInt64{Int64: int64(*e.DurationMin), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workers_sleep_entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.WorkerID, e.WorkerName, e.WorkerKey, formatDate(e.Date), e.SleepHours, e.SleepMinutes, e.SleepText,
		duration, string(e.Status), e.Source,
		nullString(e.ChatID), nullString(e.FileID), nullString(e.Notes), nullString(e.RawText),
		nullString(e.ImageURL), nullString(e.PDFURL), formatTimestamp(e.CreatedAt),
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
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM workers_sleep_entries
		WHERE date >= ? AND date < ?
		ORDER BY date, worker_key, created_at`,
		formatDate(from), formatDate(to),
	)
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
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workers_sleep_entries WHERE date >= ? AND date < ?`,
		formatDate(from), formatDate(to),
	).Scan(&n)
	if err != nil {
		return 0, database.Wrap("count entries", err)
	}
	return n, nil
}

// DeleteBySource implements entry.EntryRepository.
func (r *entryRepository) DeleteBySource(ctx context.Context, source string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `DELETE FROM workers_sleep_entries WHERE source = ?`, source)
	if err != nil {
		return 0, database.Wrap("delete entries by source", err)
	}
	n, err := res.RowsAffected()
	return n, database.Wrap("delete entries by source", err)
}
