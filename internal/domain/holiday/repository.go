package holiday

import (
	"context"
	"time"
)

// HolidayRepository stores holidays keyed by (date, country).
type HolidayRepository interface {
	// List returns holidays of one country in [from, to), ordered by date.
	List(ctx context.Context, countryCode string, from, to time.Time) ([]Holiday, error)

	// ListRange returns holidays of every country in [from, to).
	ListRange(ctx context.Context, from, to time.Time) ([]Holiday, error)

	// FindByDate returns nil, nil when the date is not a holiday.
	FindByDate(ctx context.Context, date time.Time, countryCode string) (*Holiday, error)

	// Upsert inserts or overwrites name and flag of (date, country).
	Upsert(ctx context.Context, h Holiday) error

	// UpsertBatch applies Upsert to every holiday atomically.
	UpsertBatch(ctx context.Context, hs []Holiday) error

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, date time.Time, countryCode string) (bool, error)
}
