package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
)

type entryRepository struct {
	mu      sync.RWMutex
	entries []entry.Entry
}

func NewEntryRepository() entry.EntryRepository {
	return &entryRepository{}
}

// Create implements entry.EntryRepository.
func (r *entryRepository) Create(_ context.Context, e entry.Entry) (entry.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	return e, nil
}

// ListByDate implements entry.EntryRepository.
func (r *entryRepository) ListByDate(ctx context.Context, date time.Time) ([]entry.Entry, error) {
	return r.ListByRange(ctx, date, date.AddDate(0, 0, 1))
}

// ListByRange implements entry.EntryRepository.
func (r *entryRepository) ListByRange(_ context.Context, from, to time.Time) ([]entry.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entry.Entry
	for _, e := range r.entries {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// CountByRange implements entry.EntryRepository.
func (r *entryRepository) CountByRange(ctx context.Context, from, to time.Time) (int, error) {
	es, err := r.ListByRange(ctx, from, to)
	return len(es), err
}

// DeleteBySource implements entry.EntryRepository.
func (r *entryRepository) DeleteBySource(_ context.Context, source string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	var removed int64
	for _, e := range r.entries {
		if e.Source == source {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, nil
}
