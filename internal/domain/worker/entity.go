package worker

import (
	"time"
)

type Worker struct {
	ID              string
	Name            string
	Key             string
	CountryCode     string
	Timezone        string
	Schedule        Schedule
	ExcludeHolidays bool
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Schedule is the weekly reporting policy of a worker.
type Schedule string

const (
	ScheduleAllDays Schedule = "ALL_DAYS"
	ScheduleMonSat  Schedule = "MON_SAT"
	ScheduleMonFri  Schedule = "MON_FRI"
)

var ScheduleValues = []string{
	string(ScheduleAllDays),
	string(ScheduleMonSat),
	string(ScheduleMonFri),
}

// IsScheduledDay reports whether date is a nominal reporting day, ignoring
// holidays. The weekday is taken from the UTC civil calendar, not the
// worker's timezone. Unrecognized policies behave as MON_FRI.
func (s Schedule) IsScheduledDay(date time.Time) bool {
	dow := date.UTC().Weekday()

	switch s {
	case ScheduleAllDays:
		return true
	case ScheduleMonSat:
		return dow >= time.Monday && dow <= time.Saturday
	default:
		return dow >= time.Monday && dow <= time.Friday
	}
}

// Defaults holds the policy assigned to workers created on first submission.
type Defaults struct {
	CountryCode     string
	Timezone        string
	Schedule        Schedule
	ExcludeHolidays bool
}
