package compliance

import (
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

var t0 = time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	d, ok := validator.IsValidDate(s)
	if !ok {
		panic("bad test date " + s)
	}
	return d
}

func mins(n int) *int { return &n }

func newWorker(name string, schedule worker.Schedule, excludeHolidays bool) worker.Worker {
	return worker.Worker{
		ID:              "w-" + worker.NormalizeKey(name),
		Name:            name,
		Key:             worker.NormalizeKey(name),
		CountryCode:     "PE",
		Timezone:        "America/Lima",
		Schedule:        schedule,
		ExcludeHolidays: excludeHolidays,
		IsActive:        true,
	}
}

func newEntry(id string, w worker.Worker, date string, duration *int, createdAt time.Time) entry.Entry {
	e := entry.Entry{
		ID:          id,
		WorkerID:    w.ID,
		WorkerName:  w.Name,
		WorkerKey:   w.Key,
		Date:        day(date),
		DurationMin: duration,
		Status:      entry.StatusOK,
		Source:      entry.DefaultSource,
		CreatedAt:   createdAt,
	}
	if duration == nil {
		e.Status = entry.StatusPending
		e.SleepText = entry.PendingMarker
	} else {
		e.SleepHours, e.SleepMinutes = *duration/60, *duration%60
		e.SleepText = entry.FormatMinutes(*duration)
	}
	return e
}
