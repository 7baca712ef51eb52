package compliance

import (
	"slices"
	"sort"
	"strconv"

	"github.com/rbrd/isleep-backend-go/internal/domain/compliance"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/calendar"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Ranking is the monthly rollup: one row per active worker sorted by
// compliance descending, plus the fleet KPI.
type Ranking struct {
	Rows []compliance.RankingRow
	KPI  compliance.KPI
}

type workerTally struct {
	w         worker.Worker
	days      map[string]struct{}
	durations []int
}

// Aggregate computes per-worker compliance over period from canonical
// entries. Entries of workers outside the active roster are ignored.
func Aggregate(period compliance.Period, roster []worker.Worker, canonical []entry.Entry, holidays calendar.Index) Ranking {
	var tallies []*workerTally
	byKey := make(map[string]*workerTally)
	for _, w := range roster {
		if !w.IsActive {
			continue
		}
		if _, dup := byKey[w.Key]; dup {
			continue
		}
		t := &workerTally{w: w, days: make(map[string]struct{})}
		tallies = append(tallies, t)
		byKey[w.Key] = t
	}

	for _, e := range canonical {
		t, ok := byKey[e.WorkerKey]
		if !ok {
			continue
		}
		t.days[e.Date.Format(validator.DateLayout)] = struct{}{}
		if e.DurationMin != nil {
			t.durations = append(t.durations, *e.DurationMin)
		}
	}

	days := period.Days()
	rows := make([]compliance.RankingRow, 0, len(tallies))
	var (
		pcts   []float64
		pooled []int
	)

	for _, t := range tallies {
		required := 0
		for _, d := range days {
			if IsRequiredToday(t.w, d, holidays.Lookup(d, t.w.CountryCode)) {
				required++
			}
		}

		row := compliance.RankingRow{
			WorkerName:       t.w.Name,
			WorkerKey:        t.w.Key,
			CountryCode:      t.w.CountryCode,
			RequiredSchedule: string(t.w.Schedule),
			ExcludeHolidays:  t.w.ExcludeHolidays,
			RegisteredDays:   len(t.days),
			RequiredDays:     required,
			TotalEntries:     len(t.days),
		}

		if required > 0 {
			pct := Percentage(len(t.days), required)
			row.CompliancePct = floatPtr(pct)
			pcts = append(pcts, *row.CompliancePct)
		}

		if len(t.durations) > 0 {
			avg := meanMinutes(t.durations)
			lo, hi := slices.Min(t.durations), slices.Max(t.durations)
			row.AvgSleepMin, row.AvgSleep = minutesPtr(avg)
			row.MaxSleepMin, row.MaxSleep = minutesPtr(hi)
			row.MinSleepMin, row.MinSleep = minutesPtr(lo)
			pooled = append(pooled, t.durations...)
		}

		rows = append(rows, row)
	}

	kpi := compliance.KPI{}
	if len(pcts) > 0 {
		kpi.CompliancePct = floatPtr(fleetMean(pcts))
	}
	if len(pooled) > 0 {
		kpi.AvgSleepMin, kpi.AvgSleep = minutesPtr(meanMinutes(pooled))
	}
	sorted, top, bottom := rank(rows, 3)
	kpi.Top3, kpi.Bottom3 = top, bottom

	return Ranking{Rows: sorted, KPI: kpi}
}

// Percentage returns registered/required*100 rounded to one decimal, half
// away from zero. required must be positive.
func Percentage(registered, required int) decimal.Decimal {
	return decimal.NewFromInt(int64(registered)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(required))).
		Round(1)
}

// fleetMean averages the already rounded row percentages in float64 and
// rounds the binary result to one decimal, so 0.0 and 5.3 give 2.6.
func fleetMean(pcts []float64) decimal.Decimal {
	sum := 0.0
	for _, p := range pcts {
		sum += p
	}
	mean := sum / float64(len(pcts))
	// 30 digits of the exact binary value are enough to tell a true tie.
	return decimal.RequireFromString(strconv.FormatFloat(mean, 'f', 30, 64)).Round(1)
}

// rank sorts rows by compliance descending, missing values as zero,
// keeping roster order among ties. Top is the head of that order and
// bottom the head of its reverse, so tied rows appear flipped there.
func rank(rows []compliance.RankingRow, n int) (sorted, top, bottom []compliance.RankingRow) {
	sorted = slices.Clone(rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pctOrZero(sorted[i]) > pctOrZero(sorted[j])
	})

	reversed := slices.Clone(sorted)
	slices.Reverse(reversed)

	top = slices.Clone(sorted[:min(n, len(sorted))])
	bottom = reversed[:min(n, len(reversed))]
	return sorted, top, bottom
}

func pctOrZero(r compliance.RankingRow) float64 {
	if r.CompliancePct == nil {
		return 0
	}
	return *r.CompliancePct
}

func meanMinutes(samples []int) int {
	sum := 0
	for _, s := range samples {
		sum += s
	}
	return int(decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(samples)))).
		Round(0).
		IntPart())
}

func floatPtr(d decimal.Decimal) *float64 {
	f := d.InexactFloat64()
	return &f
}

func minutesPtr(total int) (*int, *string) {
	text := entry.FormatMinutes(total)
	return &total, &text
}
