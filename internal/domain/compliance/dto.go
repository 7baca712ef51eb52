package compliance

import (
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
)

type RangeResponse struct {
	Start        string `json:"start"`
	EndExclusive string `json:"end_exclusive"`
}

// ========================================
// TODAY SNAPSHOT
// ========================================

type RegisteredItem struct {
	WorkerName    string            `json:"worker_name"`
	WorkerKey     string            `json:"worker_key"`
	SleepText     string            `json:"sleep_text"`
	DurationMin   *int              `json:"duration_min"`
	Status        entry.Status      `json:"status"`
	SleepStatus   entry.SleepStatus `json:"sleep_status"`
	Source        string            `json:"source"`
	CreatedAt     string            `json:"created_at"`
	ImageURL      *string           `json:"image_url"`
	PDFURL        *string           `json:"pdf_url"`
	RequiredToday bool              `json:"required_today"`
	IsHoliday     bool              `json:"is_holiday"`
	HolidayName   string            `json:"holiday_name"`
}

type PendingItem struct {
	WorkerName string `json:"worker_name"`
	WorkerKey  string `json:"worker_key"`
}

type HolidaySummary struct {
	CountryCode string `json:"country_code"`
	Name        string `json:"name"`
	IsRequired  bool   `json:"is_required"`
}

type TodayResponse struct {
	Date                  string           `json:"date"`
	RegisteredCount       int              `json:"registered_count"`
	PendingCount          int              `json:"pending_count"`
	Registered            []RegisteredItem `json:"registered"`
	Pending               []PendingItem    `json:"pending"`
	RegisteredNotRequired []RegisteredItem `json:"registered_not_required"`
	HolidaySummary        []HolidaySummary `json:"holiday_summary"`
}

// ========================================
// ENTRIES
// ========================================

type EntriesResponse struct {
	Month             string                `json:"month"`
	Range             RangeResponse         `json:"range"`
	RawCount          int                   `json:"raw_count"`
	ConsolidatedCount int                   `json:"consolidated_count"`
	Entries           []entry.EntryResponse `json:"entries"`
}

// ========================================
// RANKING
// ========================================

// RankingRow is the monthly compliance of one worker. CompliancePct is nil
// when the worker had no required days; sleep figures are nil without any
// usable duration.
type RankingRow struct {
	WorkerName       string   `json:"worker_name"`
	WorkerKey        string   `json:"worker_key"`
	CountryCode      string   `json:"country_code"`
	RequiredSchedule string   `json:"required_schedule"`
	ExcludeHolidays  bool     `json:"exclude_holidays"`
	RegisteredDays   int      `json:"registered_days"`
	RequiredDays     int      `json:"required_days"`
	CompliancePct    *float64 `json:"compliance_pct"`
	AvgSleep         *string  `json:"avg_sleep"`
	MaxSleep         *string  `json:"max_sleep"`
	MinSleep         *string  `json:"min_sleep"`
	AvgSleepMin      *int     `json:"avg_sleep_min"`
	MaxSleepMin      *int     `json:"max_sleep_min"`
	MinSleepMin      *int     `json:"min_sleep_min"`
	TotalEntries     int      `json:"total_entries"`
}

type KPI struct {
	CompliancePct *float64     `json:"compliance_avg_pct"`
	AvgSleep      *string      `json:"avg_sleep_month"`
	AvgSleepMin   *int         `json:"avg_sleep_month_min"`
	Top3          []RankingRow `json:"top3"`
	Bottom3       []RankingRow `json:"bottom3"`
}

type RankingResponse struct {
	Month string        `json:"month"`
	Range RangeResponse `json:"range"`
	KPI   KPI           `json:"kpi"`
	Rows  []RankingRow  `json:"rows"`
}
