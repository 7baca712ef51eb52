package compliance

import (
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
)

// IsRequiredToday decides whether w had to report on date. h is the holiday
// of w's country on that date, or nil. Only optional holidays can waive the
// requirement, and only for workers that exclude holidays.
func IsRequiredToday(w worker.Worker, date time.Time, h *holiday.Holiday) bool {
	if !w.Schedule.IsScheduledDay(date) {
		return false
	}
	if h == nil {
		return true
	}
	return !(w.ExcludeHolidays && !h.IsRequired)
}
