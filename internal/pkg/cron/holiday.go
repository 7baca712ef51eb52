package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
)

// HolidayJobs keeps the built-in holiday calendars populated.
type HolidayJobs struct {
	holidayService holiday.HolidayService
	countries      []string
	interval       time.Duration
	now            func() time.Time
}

func NewHolidayJobs(holidayService holiday.HolidayService, countries []string, interval time.Duration) *HolidayJobs {
	return &HolidayJobs{
		holidayService: holidayService,
		countries:      countries,
		interval:       interval,
		now:            time.Now,
	}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("seed_holidays", j.interval, j.SeedCurrentAndNextYear)
}

// SeedCurrentAndNextYear upserts the current and next year for every
// configured country. Seeding is idempotent, so repeated runs only
// refresh names and flags. One failing country does not stop the others.
func (j *HolidayJobs) SeedCurrentAndNextYear(ctx context.Context) error {
	year := j.now().UTC().Year()
	years := 2

	var errs []error
	for _, country := range j.countries {
		_, err := j.holidayService.Seed(ctx, holiday.SeedHolidaysRequest{
			CountryCode: country,
			StartYear:   &year,
			Years:       &years,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("seed %s: %w", country, err))
		}
	}
	return errors.Join(errs...)
}
