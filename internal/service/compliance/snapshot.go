package compliance

import (
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/compliance"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

// BuildSnapshot classifies the active roster for one date. canonical holds
// the canonical entries of that date; holidays maps a country to its
// holiday on that date (nil or absent when none).
func BuildSnapshot(
	date time.Time,
	roster []worker.Worker,
	canonical []entry.Entry,
	holidays map[string]*holiday.Holiday,
	threshold int,
) compliance.TodayResponse {
	best := make(map[string]entry.Entry, len(canonical))
	for _, e := range canonical {
		best[e.WorkerKey] = e
	}

	out := compliance.TodayResponse{
		Date:                  date.Format(validator.DateLayout),
		Registered:            []compliance.RegisteredItem{},
		Pending:               []compliance.PendingItem{},
		RegisteredNotRequired: []compliance.RegisteredItem{},
		HolidaySummary:        []compliance.HolidaySummary{},
	}

	summarized := make(map[string]bool)
	for _, w := range roster {
		if !w.IsActive {
			continue
		}

		h := holidays[w.CountryCode]
		if h != nil && !summarized[w.CountryCode] {
			summarized[w.CountryCode] = true
			out.HolidaySummary = append(out.HolidaySummary, compliance.HolidaySummary{
				CountryCode: w.CountryCode,
				Name:        h.Name,
				IsRequired:  h.IsRequired,
			})
		}

		required := IsRequiredToday(w, date, h)

		e, ok := best[w.Key]
		if !ok {
			if required {
				out.Pending = append(out.Pending, compliance.PendingItem{
					WorkerName: w.Name,
					WorkerKey:  w.Key,
				})
			}
			continue
		}

		item := compliance.RegisteredItem{
			WorkerName:    w.Name,
			WorkerKey:     w.Key,
			SleepText:     e.SleepText,
			DurationMin:   e.DurationMin,
			Status:        e.Status,
			SleepStatus:   entry.Classify(e, threshold),
			Source:        e.Source,
			CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
			ImageURL:      e.ImageURL,
			PDFURL:        e.PDFURL,
			RequiredToday: required,
			IsHoliday:     h != nil,
		}
		if h != nil {
			item.HolidayName = h.Name
		}

		out.Registered = append(out.Registered, item)
		if !required {
			out.RegisteredNotRequired = append(out.RegisteredNotRequired, item)
		}
	}

	out.RegisteredCount = len(out.Registered)
	out.PendingCount = len(out.Pending)
	return out
}
