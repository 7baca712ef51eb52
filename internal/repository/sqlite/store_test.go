package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "isleep.db"))
	require.NoError(t, err)

	s, err := New(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func juan() worker.Worker {
	return worker.Worker{
		Name:            "Juan Pérez",
		Key:             "juan perez",
		CountryCode:     "PE",
		Timezone:        "America/Lima",
		Schedule:        worker.ScheduleMonFri,
		ExcludeHolidays: true,
		IsActive:        true,
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.migrate(context.Background()))
}

func TestWorkerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkerRepository(newStore(t))

	first, err := repo.GetOrCreate(ctx, juan())
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, worker.ScheduleMonFri, first.Schedule)
	assert.True(t, first.ExcludeHolidays)

	renamed := juan()
	renamed.Name = "JUAN PEREZ"
	again, err := repo.GetOrCreate(ctx, renamed)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Juan Pérez", again.Name)

	first.Schedule = worker.ScheduleAllDays
	first.IsActive = false
	updated, err := repo.UpdatePolicy(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, worker.ScheduleAllDays, updated.Schedule)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = repo.GetByKey(ctx, "nobody")
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)

	_, err = repo.UpdatePolicy(ctx, worker.Worker{Key: "nobody", Schedule: worker.ScheduleMonFri})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestEntryRepository(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	w, err := NewWorkerRepository(s).GetOrCreate(ctx, juan())
	require.NoError(t, err)

	repo := NewEntryRepository(s)
	duration := 435
	notes := "ocr ok"
	created := time.Date(2026, 1, 10, 12, 30, 0, 123456789, time.UTC)

	_, err = repo.Create(ctx, entry.Entry{
		ID: "e1", WorkerID: w.ID, WorkerName: w.Name, WorkerKey: w.Key,
		Date: day("2026-01-10"), SleepHours: 7, SleepMinutes: 15, SleepText: "7 h 15 min",
		DurationMin: &duration, Status: entry.StatusOK, Source: "demo", Notes: &notes,
		CreatedAt: created,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, entry.Entry{
		ID: "e2", WorkerID: w.ID, WorkerName: w.Name, WorkerKey: w.Key,
		Date: day("2026-02-01"), SleepText: entry.PendingMarker,
		Status: entry.StatusPending, Source: entry.DefaultSource, CreatedAt: created,
	})
	require.NoError(t, err)

	got, err := repo.ListByDate(ctx, day("2026-01-10"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, day("2026-01-10"), got[0].Date)
	require.NotNil(t, got[0].DurationMin)
	assert.Equal(t, 435, *got[0].DurationMin)
	require.NotNil(t, got[0].Notes)
	assert.Equal(t, "ocr ok", *got[0].Notes)
	assert.Nil(t, got[0].ImageURL)
	assert.True(t, created.Equal(got[0].CreatedAt))

	n, err := repo.CountByRange(ctx, day("2026-01-01"), day("2026-02-01"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	feb, err := repo.ListByRange(ctx, day("2026-02-01"), day("2026-03-01"))
	require.NoError(t, err)
	require.Len(t, feb, 1)
	assert.Nil(t, feb[0].DurationMin)
	assert.Equal(t, entry.StatusPending, feb[0].Status)

	deleted, err := repo.DeleteBySource(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestHolidayRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewHolidayRepository(newStore(t))

	h := holiday.Holiday{Date: day("2026-01-01"), CountryCode: "PE", Name: "Año Nuevo", IsRequired: true}
	require.NoError(t, repo.Upsert(ctx, h))

	h.Name = "Año Nuevo (renamed)"
	h.IsRequired = false
	require.NoError(t, repo.Upsert(ctx, h))

	found, err := repo.FindByDate(ctx, day("2026-01-01"), "PE")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Año Nuevo (renamed)", found.Name)
	assert.False(t, found.IsRequired)

	missing, err := repo.FindByDate(ctx, day("2026-01-02"), "PE")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.UpsertBatch(ctx, []holiday.Holiday{
		{Date: day("2026-05-01"), CountryCode: "PE", Name: "Día del Trabajo", IsRequired: true},
		{Date: day("2026-05-01"), CountryCode: "CL", Name: "Día del Trabajador", IsRequired: true},
	}))

	pe, err := repo.List(ctx, "PE", day("2026-01-01"), day("2027-01-01"))
	require.NoError(t, err)
	assert.Len(t, pe, 2)

	all, err := repo.ListRange(ctx, day("2026-05-01"), day("2026-05-02"))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CL", all[0].CountryCode)

	ok, err := repo.Delete(ctx, day("2026-05-01"), "CL")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, day("2026-05-01"), "CL")
	require.NoError(t, err)
	assert.False(t, ok)
}
