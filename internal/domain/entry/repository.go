package entry

import (
	"context"
	"time"
)

// EntryRepository is the append-only log of raw reports.
type EntryRepository interface {
	// Create stores e as given; ID and CreatedAt must already be set.
	Create(ctx context.Context, e Entry) (Entry, error)

	// ListByDate returns every raw entry of one day.
	ListByDate(ctx context.Context, date time.Time) ([]Entry, error)

	// ListByRange returns every raw entry with from <= date < to.
	ListByRange(ctx context.Context, from, to time.Time) ([]Entry, error)

	CountByRange(ctx context.Context, from, to time.Time) (int, error)

	// DeleteBySource removes entries with the given provenance and
	// returns how many were removed.
	DeleteBySource(ctx context.Context, source string) (int64, error)
}
