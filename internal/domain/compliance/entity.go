package compliance

import (
	"time"

	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

const DefaultMinSleepMinutes = 345

// Config carries the engine's tunables into the compliance service.
type Config struct {
	MinSleepMinutes int
}

// Period is a half-open date range [Start, EndExclusive).
type Period struct {
	Start        time.Time
	EndExclusive time.Time
}

// MonthPeriod returns the period covering the calendar month of month.
func MonthPeriod(month time.Time) Period {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, EndExclusive: start.AddDate(0, 1, 0)}
}

// Days enumerates every date in the period.
func (p Period) Days() []time.Time {
	var days []time.Time
	for d := p.Start; d.Before(p.EndExclusive); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (p Period) Range() RangeResponse {
	return RangeResponse{
		Start:        p.Start.Format(validator.DateLayout),
		EndExclusive: p.EndExclusive.Format(validator.DateLayout),
	}
}
