package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	*Store
}

func NewHolidayRepository(s *Store) holiday.HolidayRepository {
	return &holidayRepository{Store: s}
}

const upsertHoliday = `
	INSERT INTO holidays (date, country_code, name, is_required)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (date, country_code)
	DO UPDATE SET name = excluded.name, is_required = excluded.is_required`

func scanHoliday(row rowScanner) (holiday.Holiday, error) {
	var (
		h    holiday.Holiday
		date string
		err  error
	)
	if err = row.Scan(&date, &h.CountryCode, &h.Name, &h.IsRequired); err != nil {
		return holiday.Holiday{}, err
	}
	h.Date, err = parseDate(date)
	return h, err
}

func (r *holidayRepository) list(ctx context.Context, query string, args ...any) ([]holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, database.Wrap("list holidays", err)
	}
	defer rows.Close()

	var out []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, database.Wrap("scan holiday", err)
		}
		out = append(out, h)
	}
	return out, database.Wrap("list holidays", rows.Err())
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context, countryCode string, from, to time.Time) ([]holiday.Holiday, error) {
	return r.list(ctx, `
		SELECT date, country_code, name, is_required FROM holidays
		WHERE country_code = ? AND date >= ? AND date < ?
		ORDER BY date`,
		countryCode, formatDate(from), formatDate(to),
	)
}

// ListRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return r.list(ctx, `
		SELECT date, country_code, name, is_required FROM holidays
		WHERE date >= ? AND date < ?
		ORDER BY date, country_code`,
		formatDate(from), formatDate(to),
	)
}

// FindByDate implements holiday.HolidayRepository.
func (r *holidayRepository) FindByDate(ctx context.Context, date time.Time, countryCode string) (*holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, err := scanHoliday(r.db.QueryRowContext(ctx,
		`SELECT date, country_code, name, is_required FROM holidays WHERE date = ? AND country_code = ?`,
		formatDate(date), countryCode,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, database.Wrap("find holiday", err)
	}
	return &h, nil
}

// Upsert implements holiday.HolidayRepository.
func (r *holidayRepository) Upsert(ctx context.Context, h holiday.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, upsertHoliday, formatDate(h.Date), h.CountryCode, h.Name, h.IsRequired)
	return database.Wrap("upsert holiday", err)
}

// UpsertBatch implements holiday.HolidayRepository.
func (r *holidayRepository) UpsertBatch(ctx context.Context, hs []holiday.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return database.Wrap("begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertHoliday)
	if err != nil {
		return database.Wrap("prepare holiday upsert", err)
	}
	defer stmt.Close()

	for _, h := range hs {
		if _, err := stmt.ExecContext(ctx, formatDate(h.Date), h.CountryCode, h.Name, h.IsRequired); err != nil {
			return database.Wrap("upsert holidays", fmt.Errorf("%s %s: %w", h.CountryCode, formatDate(h.Date), err))
		}
	}

	return database.Wrap("commit transaction", tx.Commit())
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, date time.Time, countryCode string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE date = ? AND country_code = ?`, formatDate(date), countryCode)
	if err != nil {
		return false, database.Wrap("delete holiday", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, database.Wrap("delete holiday", err)
	}
	return n > 0, nil
}
