package calendar

import (
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

// Index answers holiday lookups over a preloaded set. A nil or empty Index
// reports no holidays.
type Index map[string]holiday.Holiday

func indexKey(date time.Time, country string) string {
	return country + "|" + date.UTC().Format(validator.DateLayout)
}

func NewIndex(hs []holiday.Holiday) Index {
	idx := make(Index, len(hs))
	for _, h := range hs {
		idx[indexKey(h.Date, h.CountryCode)] = h
	}
	return idx
}

// Lookup returns the holiday of country on date, or nil.
func (idx Index) Lookup(date time.Time, country string) *holiday.Holiday {
	h, ok := idx[indexKey(date, country)]
	if !ok {
		return nil
	}
	return &h
}
