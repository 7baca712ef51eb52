package compliance

import (
	"strconv"
	"testing"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/compliance"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/calendar"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// February 2026 starts on a Sunday and has exactly 20 weekdays.
var february = compliance.MonthPeriod(day("2026-02-01"))

func weekdays(p compliance.Period) []time.Time {
	var out []time.Time
	for _, d := range p.Days() {
		if worker.ScheduleMonFri.IsScheduledDay(d) {
			out = append(out, d)
		}
	}
	return out
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		registered, required int
		want                 string
	}{
		{15, 20, "75"},
		{20, 20, "100"},
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{1, 16, "6.3"},
		{3, 16, "18.8"},
		{25, 20, "125"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Percentage(c.registered, c.required).String(), "%d/%d", c.registered, c.required)
	}
}

func TestFleetMean(t *testing.T) {
	cases := []struct {
		pcts []float64
		want string
	}{
		{[]float64{75, 100}, "87.5"},
		{[]float64{0, 5.3}, "2.6"},
		{[]float64{0, 0.5}, "0.3"},
		{[]float64{33.3, 66.7, 100}, "66.7"},
		{[]float64{78.9}, "78.9"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, fleetMean(c.pcts).String(), "%v", c.pcts)
	}
}

func TestAggregate_KPIFollowsRoundedRowPercentages(t *testing.T) {
	// one registration out of 19 required days is 5.3, the other worker has none
	idx := calendar.NewIndex([]holiday.Holiday{{Date: day("2026-02-02"), CountryCode: "PE", Name: "Puente"}})
	ana := newWorker("Ana Ruiz", worker.ScheduleMonFri, true)
	beto := newWorker("Beto Paz", worker.ScheduleMonFri, true)

	got := Aggregate(february, []worker.Worker{ana, beto}, []entry.Entry{
		newEntry("1", beto, "2026-02-03", mins(420), t0),
	}, idx)

	assert.Equal(t, []string{"beto_paz", "ana_ruiz"}, keys(got.Rows))
	assert.Equal(t, 5.3, *got.Rows[0].CompliancePct)
	assert.Equal(t, 0.0, *got.Rows[1].CompliancePct)
	require.NotNil(t, got.KPI.CompliancePct)
	assert.Equal(t, 2.6, *got.KPI.CompliancePct)
}

func TestAggregate_FleetRollup(t *testing.T) {
	days := weekdays(february)
	require.Len(t, days, 20)

	ana := newWorker("Ana Ruiz", worker.ScheduleMonFri, true)
	beto := newWorker("Beto Paz", worker.ScheduleMonFri, true)
	zoe := newWorker("Zoe Lima", worker.ScheduleMonFri, true)
	zoe.CountryCode = "XX"
	retired := newWorker("Rita Old", worker.ScheduleAllDays, false)
	retired.IsActive = false
	ghost := newWorker("Ghost", worker.ScheduleAllDays, false)

	// every weekday is an optional holiday in XX, so Zoe is never required
	var hs []holiday.Holiday
	for _, d := range days {
		hs = append(hs, holiday.Holiday{Date: d, CountryCode: "XX", Name: "Feriado"})
	}

	var canonical []entry.Entry
	for i, d := range days[:15] {
		canonical = append(canonical, newEntry("a"+strconv.Itoa(i), ana, d.Format(validator.DateLayout), mins(420), t0))
	}
	for i, d := range days {
		var dur *int
		if i == 0 {
			dur = mins(300)
		}
		canonical = append(canonical, newEntry("b"+strconv.Itoa(i), beto, d.Format(validator.DateLayout), dur, t0))
	}
	canonical = append(canonical,
		newEntry("z1", zoe, "2026-02-07", mins(500), t0),
		newEntry("r1", retired, "2026-02-02", mins(900), t0),
		newEntry("g1", ghost, "2026-02-02", mins(900), t0),
	)

	got := Aggregate(february, []worker.Worker{ana, beto, retired, zoe}, canonical, calendar.NewIndex(hs))
	require.Len(t, got.Rows, 3)

	assert.Equal(t, []string{"beto_paz", "ana_ruiz", "zoe_lima"}, keys(got.Rows))
	betoRow, anaRow, zoeRow := got.Rows[0], got.Rows[1], got.Rows[2]
	assert.Equal(t, "ana_ruiz", anaRow.WorkerKey)
	assert.Equal(t, 20, anaRow.RequiredDays)
	assert.Equal(t, 15, anaRow.RegisteredDays)
	require.NotNil(t, anaRow.CompliancePct)
	assert.Equal(t, 75.0, *anaRow.CompliancePct)
	require.NotNil(t, anaRow.AvgSleep)
	assert.Equal(t, "7 h 0 min", *anaRow.AvgSleep)

	require.NotNil(t, betoRow.CompliancePct)
	assert.Equal(t, 100.0, *betoRow.CompliancePct)
	require.NotNil(t, betoRow.AvgSleepMin)
	assert.Equal(t, 300, *betoRow.AvgSleepMin)
	assert.Equal(t, 300, *betoRow.MaxSleepMin)
	assert.Equal(t, 300, *betoRow.MinSleepMin)

	assert.Equal(t, 0, zoeRow.RequiredDays)
	assert.Equal(t, 1, zoeRow.RegisteredDays)
	assert.Nil(t, zoeRow.CompliancePct)

	// the worker without required days does not drag the average down
	require.NotNil(t, got.KPI.CompliancePct)
	assert.Equal(t, 87.5, *got.KPI.CompliancePct)

	// pooled over all samples: (15*420 + 300 + 500) / 17 = 417.6
	require.NotNil(t, got.KPI.AvgSleepMin)
	assert.Equal(t, 418, *got.KPI.AvgSleepMin)
	assert.Equal(t, "6 h 58 min", *got.KPI.AvgSleep)

	require.Len(t, got.KPI.Top3, 3)
	assert.Equal(t, []string{"beto_paz", "ana_ruiz", "zoe_lima"}, keys(got.KPI.Top3))
	assert.Equal(t, []string{"zoe_lima", "ana_ruiz", "beto_paz"}, keys(got.KPI.Bottom3))
}

func TestAggregate_DurationStatsAndOverReporting(t *testing.T) {
	ana := newWorker("Ana Ruiz", worker.ScheduleMonFri, true)

	canonical := []entry.Entry{
		newEntry("1", ana, "2026-02-02", mins(435), t0),
		newEntry("2", ana, "2026-02-07", mins(436), t0), // Saturday
		newEntry("3", ana, "2026-02-08", nil, t0),       // Sunday, pending
	}

	got := Aggregate(february, []worker.Worker{ana}, canonical, nil)
	require.Len(t, got.Rows, 1)
	row := got.Rows[0]

	assert.Equal(t, 3, row.RegisteredDays)
	assert.Equal(t, 20, row.RequiredDays)
	assert.Equal(t, 15.0, *row.CompliancePct)

	assert.Equal(t, 436, *row.AvgSleepMin) // 435.5 rounds up
	assert.Equal(t, 436, *row.MaxSleepMin)
	assert.Equal(t, 435, *row.MinSleepMin)
	assert.Equal(t, "7 h 15 min", *row.MinSleep)
}

func TestAggregate_NoData(t *testing.T) {
	ana := newWorker("Ana Ruiz", worker.ScheduleMonFri, true)

	got := Aggregate(february, []worker.Worker{ana}, nil, nil)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, 0.0, *got.Rows[0].CompliancePct)
	assert.Nil(t, got.Rows[0].AvgSleep)
	assert.Nil(t, got.Rows[0].MaxSleep)
	assert.Nil(t, got.Rows[0].MinSleep)
	assert.Nil(t, got.KPI.AvgSleep)
	assert.Equal(t, 0.0, *got.KPI.CompliancePct)

	empty := Aggregate(february, nil, nil, nil)
	assert.Empty(t, empty.Rows)
	assert.Nil(t, empty.KPI.CompliancePct)
	assert.Empty(t, empty.KPI.Top3)
	assert.Empty(t, empty.KPI.Bottom3)
}

func TestAggregate_HolidayPolicy(t *testing.T) {
	excluding := newWorker("Ana Ruiz", worker.ScheduleMonFri, true)
	including := newWorker("Beto Paz", worker.ScheduleMonFri, false)
	allDays := newWorker("Carla Soto", worker.ScheduleAllDays, true)

	idx := calendar.NewIndex([]holiday.Holiday{
		{Date: day("2026-02-04"), CountryCode: "PE", Name: "Cierre", IsRequired: true},
		{Date: day("2026-02-05"), CountryCode: "PE", Name: "Puente"},
		{Date: day("2026-02-07"), CountryCode: "PE", Name: "Sabado libre"},
		{Date: day("2026-02-06"), CountryCode: "CL", Name: "Otro pais"},
	})

	got := Aggregate(february, []worker.Worker{excluding, including, allDays}, nil, idx)
	require.Len(t, got.Rows, 3)

	assert.Equal(t, 19, got.Rows[0].RequiredDays)
	assert.Equal(t, 20, got.Rows[1].RequiredDays)
	assert.Equal(t, 26, got.Rows[2].RequiredDays)
}

func TestRank_TiesKeepRosterOrder(t *testing.T) {
	row := func(key string, pct *float64) compliance.RankingRow {
		return compliance.RankingRow{WorkerKey: key, CompliancePct: pct}
	}
	pct := func(f float64) *float64 { return &f }

	rows := []compliance.RankingRow{
		row("a", pct(50)),
		row("b", pct(50)),
		row("c", pct(50)),
		row("d", pct(100)),
		row("e", nil),
		row("f", pct(0)),
	}

	sorted, top, bottom := rank(rows, 3)
	assert.Equal(t, []string{"d", "a", "b", "c", "e", "f"}, keys(sorted))
	assert.Equal(t, []string{"d", "a", "b"}, keys(top))
	assert.Equal(t, []string{"f", "e", "c"}, keys(bottom))
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, keys(rows), "input is not reordered")

	sorted, top, bottom = rank(rows[:2], 3)
	assert.Equal(t, []string{"a", "b"}, keys(sorted))
	assert.Equal(t, []string{"a", "b"}, keys(top))
	assert.Equal(t, []string{"b", "a"}, keys(bottom))
}

func keys(rows []compliance.RankingRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.WorkerKey)
	}
	return out
}
