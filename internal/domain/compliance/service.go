package compliance

import "context"

// ComplianceService answers the read-side queries of the dashboard. Dates
// are YYYY-MM-DD and months YYYY-MM; malformed values fail validation
// before any store is queried.
type ComplianceService interface {
	GetToday(ctx context.Context, date string) (TodayResponse, error)
	GetEntries(ctx context.Context, month string) (EntriesResponse, error)
	GetRanking(ctx context.Context, month string) (RankingResponse, error)
}
