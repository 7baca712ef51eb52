package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

type holidayKey struct {
	date    string
	country string
}

type holidayRepository struct {
	mu       sync.RWMutex
	holidays map[holidayKey]holiday.Holiday
}

func NewHolidayRepository() holiday.HolidayRepository {
	return &holidayRepository{holidays: make(map[holidayKey]holiday.Holiday)}
}

func keyOf(date time.Time, country string) holidayKey {
	return holidayKey{date: date.Format(validator.DateLayout), country: country}
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context, countryCode string, from, to time.Time) ([]holiday.Holiday, error) {
	all, err := r.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, h := range all {
		if h.CountryCode == countryCode {
			out = append(out, h)
		}
	}
	return out, nil
}

// ListRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListRange(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []holiday.Holiday
	for _, h := range r.holidays {
		if !h.Date.Before(from) && h.Date.Before(to) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CountryCode < out[j].CountryCode
	})
	return out, nil
}

// FindByDate implements holiday.HolidayRepository.
func (r *holidayRepository) FindByDate(_ context.Context, date time.Time, countryCode string) (*holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.holidays[keyOf(date, countryCode)]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

// Upsert implements holiday.HolidayRepository.
func (r *holidayRepository) Upsert(_ context.Context, h holiday.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.holidays[keyOf(h.Date, h.CountryCode)] = h
	return nil
}

// UpsertBatch implements holiday.HolidayRepository.
func (r *holidayRepository) UpsertBatch(_ context.Context, hs []holiday.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range hs {
		r.holidays[keyOf(h.Date, h.CountryCode)] = h
	}
	return nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(_ context.Context, date time.Time, countryCode string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := keyOf(date, countryCode)
	if _, ok := r.holidays[k]; !ok {
		return false, nil
	}
	delete(r.holidays, k)
	return true, nil
}
