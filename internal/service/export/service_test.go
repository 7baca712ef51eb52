package export

import (
	"context"
	"errors"
	"testing"

	"github.com/rbrd/isleep-backend-go/internal/domain/compliance"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubCompliance struct {
	compliance.ComplianceService
	ranking compliance.RankingResponse
	err     error
}

func (s stubCompliance) GetRanking(_ context.Context, _ string) (compliance.RankingResponse, error) {
	return s.ranking, s.err
}

func TestExportRanking(t *testing.T) {
	pct := 75.0
	avg := "7 h 0 min"
	stub := stubCompliance{ranking: compliance.RankingResponse{
		Month: "2026-02",
		Range: compliance.RangeResponse{Start: "2026-02-01", EndExclusive: "2026-03-01"},
		KPI:   compliance.KPI{CompliancePct: &pct, AvgSleep: &avg},
		Rows: []compliance.RankingRow{
			{WorkerName: "Ana Ruiz", WorkerKey: "ana_ruiz", RequiredDays: 20, RegisteredDays: 15, CompliancePct: &pct, AvgSleep: &avg},
			{WorkerName: "Zoe Lima", WorkerKey: "zoe_lima"},
		},
	}}

	buf, name, err := NewExportService(stub).ExportRanking(context.Background(), "2026-02")
	require.NoError(t, err)
	assert.Equal(t, "ranking_2026-02.xlsx", name)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(rankingSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Worker", rows[0][0])
	assert.Equal(t, "Ana Ruiz", rows[1][0])
	assert.Equal(t, "75", rows[1][7])
	assert.Equal(t, "7 h 0 min", rows[1][8])
	assert.Equal(t, "Zoe Lima", rows[2][0])

	kpi, err := f.GetRows(kpiSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Month", "2026-02"}, kpi[0])
}

func TestExportRanking_PropagatesValidation(t *testing.T) {
	stub := stubCompliance{err: validator.Single("month", "month must be a valid month (YYYY-MM)")}

	_, _, err := NewExportService(stub).ExportRanking(context.Background(), "bad")
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}
