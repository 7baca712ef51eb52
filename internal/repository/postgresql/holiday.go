package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

const upsertHoliday = `
	INSERT INTO holidays (date, country_code, name, is_required)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (date, country_code)
	DO UPDATE SET name = EXCLUDED.name, is_required = EXCLUDED.is_required
`

func (r *holidayRepository) list(ctx context.Context, query string, args ...any) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, database.Wrap("list holidays", err)
	}
	defer rows.Close()

	var out []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.Date, &h.CountryCode, &h.Name, &h.IsRequired); err != nil {
			return nil, database.Wrap("scan holiday", err)
		}
		h.Date = h.Date.UTC()
		out = append(out, h)
	}
	return out, database.Wrap("list holidays", rows.Err())
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context, countryCode string, from, to time.Time) ([]holiday.Holiday, error) {
	return r.list(ctx, `
		SELECT date, country_code, name, is_required
		FROM holidays
		WHERE country_code = $1 AND date >= $2 AND date < $3
		ORDER BY date`,
		countryCode, from, to,
	)
}

// ListRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return r.list(ctx, `
		SELECT date, country_code, name, is_required
		FROM holidays
		WHERE date >= $1 AND date < $2
		ORDER BY date, country_code`,
		from, to,
	)
}

// FindByDate implements holiday.HolidayRepository.
func (r *holidayRepository) FindByDate(ctx context.Context, date time.Time, countryCode string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var h holiday.Holiday
	err := q.QueryRow(ctx,
		`SELECT date, country_code, name, is_required FROM holidays WHERE date = $1 AND country_code = $2`,
		date, countryCode,
	).Scan(&h.Date, &h.CountryCode, &h.Name, &h.IsRequired)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, database.Wrap("find holiday", err)
	}
	h.Date = h.Date.UTC()
	return &h, nil
}

// Upsert implements holiday.HolidayRepository.
func (r *holidayRepository) Upsert(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, upsertHoliday, h.Date, h.CountryCode, h.Name, h.IsRequired)
	return database.Wrap("upsert holiday", err)
}

// UpsertBatch implements holiday.HolidayRepository.
func (r *holidayRepository) UpsertBatch(ctx context.Context, hs []holiday.Holiday) error {
	if len(hs) == 0 {
		return nil
	}

	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		tx := GetQuerier(txCtx, r.db).(pgx.Tx)

		batch := &pgx.Batch{}
		for _, h := range hs {
			batch.Queue(upsertHoliday, h.Date, h.CountryCode, h.Name, h.IsRequired)
		}
		return database.Wrap("upsert holidays", tx.SendBatch(txCtx, batch).Close())
	})
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, date time.Time, countryCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE date = $1 AND country_code = $2`, date, countryCode)
	if err != nil {
		return false, database.Wrap("delete holiday", err)
	}
	return tag.RowsAffected() > 0, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
