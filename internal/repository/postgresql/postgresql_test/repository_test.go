package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestData(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	ctx := context.Background()

	setup, ok, err := NewTestDatabase(ctx)
	if !ok {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, err)
	require.NoError(t, setup.TruncateAllTables(ctx))

	t.Cleanup(func() {
		_ = setup.TruncateAllTables(context.Background())
		setup.Close()
	})
	return setup
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkerRepository(t *testing.T) {
	setup := setupTestData(t)
	repo := postgresql.NewWorkerRepository(setup.DB)
	ctx := context.Background()

	w := worker.Worker{
		Name: "Juan Pérez", Key: "juan_perez", CountryCode: "PE", Timezone: "America/Lima",
		Schedule: worker.ScheduleMonFri, ExcludeHolidays: true, IsActive: true,
	}

	first, err := repo.GetOrCreate(ctx, w)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	w.Name = "JUAN PEREZ"
	second, err := repo.GetOrCreate(ctx, w)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Juan Pérez", second.Name)

	first.Schedule = worker.ScheduleAllDays
	first.IsActive = false
	updated, err := repo.UpdatePolicy(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, worker.ScheduleAllDays, updated.Schedule)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = repo.GetByKey(ctx, "nobody")
	assert.True(t, errors.Is(err, worker.ErrWorkerNotFound))
}

func TestEntryRepository(t *testing.T) {
	setup := setupTestData(t)
	workers := postgresql.NewWorkerRepository(setup.DB)
	repo := postgresql.NewEntryRepository(setup.DB)
	ctx := context.Background()

	w, err := workers.GetOrCreate(ctx, worker.Worker{
		Name: "Ana Ruiz", Key: "ana_ruiz", CountryCode: "PE", Timezone: "America/Lima",
		Schedule: worker.ScheduleMonFri, IsActive: true,
	})
	require.NoError(t, err)

	duration := 435
	for i, source := range []string{"demo", "manual", "demo"} {
		e := entry.Entry{
			ID: uuid.NewString(), WorkerID: w.ID, WorkerName: w.Name, WorkerKey: w.Key,
			Date: date(2026, time.January, 10+i), SleepHours: 7, SleepMinutes: 15, SleepText: "7 h 15 min",
			DurationMin: &duration, Status: entry.StatusOK, Source: source,
			CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		}
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	onDay, err := repo.ListByDate(ctx, date(2026, time.January, 11))
	require.NoError(t, err)
	require.Len(t, onDay, 1)
	assert.Equal(t, "manual", onDay[0].Source)
	assert.Equal(t, 435, *onDay[0].DurationMin)
	assert.Equal(t, date(2026, time.January, 11), onDay[0].Date)

	n, err := repo.CountByRange(ctx, date(2026, time.January, 1), date(2026, time.February, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	removed, err := repo.DeleteBySource(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestHolidayRepository(t *testing.T) {
	setup := setupTestData(t)
	repo := postgresql.NewHolidayRepository(setup.DB)
	ctx := context.Background()

	d := date(2026, time.June, 7)
	require.NoError(t, repo.Upsert(ctx, holiday.Holiday{Date: d, CountryCode: "PE", Name: "Primero"}))
	require.NoError(t, repo.Upsert(ctx, holiday.Holiday{Date: d, CountryCode: "PE", Name: "Segundo", IsRequired: true}))

	h, err := repo.FindByDate(ctx, d, "PE")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Segundo", h.Name)
	assert.True(t, h.IsRequired)

	none, err := repo.FindByDate(ctx, d, "CL")
	require.NoError(t, err)
	assert.Nil(t, none)

	batch := []holiday.Holiday{
		{Date: date(2026, time.January, 1), CountryCode: "PE", Name: "Año Nuevo"},
		{Date: date(2026, time.May, 1), CountryCode: "PE", Name: "Día del Trabajo"},
	}
	require.NoError(t, repo.UpsertBatch(ctx, batch))
	require.NoError(t, repo.UpsertBatch(ctx, batch))

	year, err := repo.List(ctx, "PE", date(2026, time.January, 1), date(2027, time.January, 1))
	require.NoError(t, err)
	assert.Len(t, year, 3)

	deleted, err := repo.Delete(ctx, d, "PE")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, d, "PE")
	require.NoError(t, err)
	assert.False(t, deleted)
}
