package entry

import (
	"errors"
	"testing"

	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		entry Entry
		want  SleepStatus
	}{
		{"above threshold", Entry{Status: StatusOK, SleepText: "7 h 15 min", DurationMin: ptr(435)}, SleepOK},
		{"exactly threshold", Entry{Status: StatusOK, SleepText: "5 h 45 min", DurationMin: ptr(345)}, SleepOK},
		{"below threshold", Entry{Status: StatusOK, SleepText: "4 h 30 min", DurationMin: ptr(270)}, SleepBad},
		{"pending status", Entry{Status: StatusPending, SleepText: "x", DurationMin: ptr(600)}, SleepPending},
		{"pending marker any case", Entry{Status: StatusOK, SleepText: "ocr pendiente", DurationMin: ptr(600)}, SleepPending},
		{"null duration", Entry{Status: StatusOK, SleepText: "7 h 0 min"}, SleepPending},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.entry, 345))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "7 h 15 min", FormatMinutes(435))
	assert.Equal(t, "0 h 0 min", FormatMinutes(0))
	assert.Equal(t, "24 h 0 min", FormatMinutes(1440))
}

func TestCreateEntryRequest_ToEntry_Pending(t *testing.T) {
	req := CreateEntryRequest{WorkerName: "Luis Gomez", Date: "2026-01-10", Status: "pending", SleepH: ptr(8.0)}
	require.NoError(t, req.Validate())

	e := req.ToEntry()
	assert.Equal(t, StatusPending, e.Status)
	assert.Equal(t, PendingMarker, e.SleepText)
	assert.Nil(t, e.DurationMin)
	assert.Zero(t, e.SleepHours)
	assert.Zero(t, e.SleepMinutes)
	assert.Equal(t, DefaultSource, e.Source)
	assert.Equal(t, SleepPending, Classify(e, 0))
}

func TestCreateEntryRequest_ToEntry_OK(t *testing.T) {
	req := CreateEntryRequest{WorkerName: "Juan Pérez", Date: "2026-01-10", SleepH: ptr(7.0), SleepM: ptr(15.0), Source: "telegram"}
	require.NoError(t, req.Validate())

	e := req.ToEntry()
	assert.Equal(t, StatusOK, e.Status)
	assert.Equal(t, "7 h 15 min", e.SleepText)
	require.NotNil(t, e.DurationMin)
	assert.Equal(t, 435, *e.DurationMin)
	assert.Equal(t, "telegram", e.Source)
	assert.Equal(t, "2026-01-10", e.Date.Format(validator.DateLayout))
}

func TestCreateEntryRequest_Validate(t *testing.T) {
	cases := []struct {
		name   string
		req    CreateEntryRequest
		fields []string
	}{
		{"missing duration", CreateEntryRequest{WorkerName: "Ana", Date: "2026-01-10"}, []string{"sleep_h"}},
		{"fractional hour", CreateEntryRequest{WorkerName: "Ana", Date: "2026-01-10", SleepH: ptr(7.5), SleepM: ptr(0.0)}, []string{"sleep_h"}},
		{"hour too large", CreateEntryRequest{WorkerName: "Ana", Date: "2026-01-10", SleepH: ptr(25.0), SleepM: ptr(0.0)}, []string{"sleep_h"}},
		{"minute too large", CreateEntryRequest{WorkerName: "Ana", Date: "2026-01-10", SleepH: ptr(7.0), SleepM: ptr(60.0)}, []string{"sleep_m"}},
		{"negative minute", CreateEntryRequest{WorkerName: "Ana", Date: "2026-01-10", SleepH: ptr(7.0), SleepM: ptr(-1.0)}, []string{"sleep_m"}},
		{"short name bad date", CreateEntryRequest{WorkerName: " A ", Date: "2026-02-30", Status: "PENDING"}, []string{"worker_name", "date"}},
		{"name without key", CreateEntryRequest{WorkerName: "¡¡!!", Date: "2026-01-10", Status: "PENDING"}, []string{"worker_name"}},
		{"unknown status", CreateEntryRequest{WorkerName: "Ana", Date: "2026-01-10", Status: "LATE"}, []string{"status"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			for _, f := range c.fields {
				assert.Contains(t, verrs.ToMap(), f)
			}
		})
	}

	ok := CreateEntryRequest{WorkerName: "Ana", Date: "2026-01-10", SleepH: ptr(24.0), SleepM: ptr(0.0)}
	assert.NoError(t, ok.Validate())
}
