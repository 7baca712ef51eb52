package entry

import (
	"fmt"
	"strings"
	"time"
)

// Status is the stored report state.
type Status string

const (
	StatusOK      Status = "OK"
	StatusPending Status = "PENDING"
)

// PendingMarker is the display text of a report without a usable duration.
const PendingMarker = "PENDIENTE"

const DefaultSource = "manual"

// Entry is one raw, immutable sleep report. Several entries may exist for
// the same (WorkerKey, Date).
type Entry struct {
	ID           string
	WorkerID     string
	WorkerName   string
	WorkerKey    string
	Date         time.Time
	SleepHours   int
	SleepMinutes int
	SleepText    string
	DurationMin  *int
	Status       Status
	Source       string
	ChatID       *string
	FileID       *string
	Notes        *string
	RawText      *string
	ImageURL     *string
	PDFURL       *string
	CreatedAt    time.Time
}

// SleepStatus is the presentation classification of an entry.
type SleepStatus string

const (
	SleepOK      SleepStatus = "ok"
	SleepBad     SleepStatus = "bad"
	SleepPending SleepStatus = "pending"
)

// Classify labels e against the minimum-sleep threshold in minutes.
func Classify(e Entry, threshold int) SleepStatus {
	if e.Status == StatusPending ||
		strings.Contains(strings.ToUpper(e.SleepText), PendingMarker) ||
		e.DurationMin == nil {
		return SleepPending
	}
	if *e.DurationMin >= threshold {
		return SleepOK
	}
	return SleepBad
}

// FormatDuration renders hours and minutes as "7 h 15 min".
func FormatDuration(hours, minutes int) string {
	return fmt.Sprintf("%d h %d min", hours, minutes)
}

// FormatMinutes renders a minute count as "7 h 15 min".
func FormatMinutes(total int) string {
	return FormatDuration(total/60, total%60)
}
