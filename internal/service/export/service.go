package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/rbrd/isleep-backend-go/internal/domain/compliance"
	"github.com/rbrd/isleep-backend-go/internal/domain/export"
	"github.com/xuri/excelize/v2"
)

const (
	rankingSheet = "Ranking"
	kpiSheet     = "KPI"
)

var rankingHeader = []any{
	"Worker", "Key", "Country", "Schedule", "Exclude holidays",
	"Required days", "Registered days", "Compliance %",
	"Avg sleep", "Max sleep", "Min sleep",
}

type ExportServiceImpl struct {
	complianceService compliance.ComplianceService
}

func NewExportService(complianceService compliance.ComplianceService) export.ExportService {
	return &ExportServiceImpl{complianceService: complianceService}
}

// ExportRanking implements export.ExportService.
func (s *ExportServiceImpl) ExportRanking(ctx context.Context, month string) (*bytes.Buffer, string, error) {
	ranking, err := s.complianceService.GetRanking(ctx, month)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rankingSheet); err != nil {
		return nil, "", fmt.Errorf("%w: %v", export.ErrGenerateFailed, err)
	}
	if err := writeRanking(f, ranking.Rows); err != nil {
		return nil, "", fmt.Errorf("%w: %v", export.ErrGenerateFailed, err)
	}

	if _, err := f.NewSheet(kpiSheet); err != nil {
		return nil, "", fmt.Errorf("%w: %v", export.ErrGenerateFailed, err)
	}
	if err := writeKPI(f, ranking); err != nil {
		return nil, "", fmt.Errorf("%w: %v", export.ErrGenerateFailed, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		slog.Error("Failed to render ranking spreadsheet", "month", month, "error", err)
		return nil, "", fmt.Errorf("%w: %v", export.ErrGenerateFailed, err)
	}

	return buf, fmt.Sprintf("ranking_%s.xlsx", month), nil
}

func writeRanking(f *excelize.File, rows []compliance.RankingRow) error {
	if err := f.SetSheetRow(rankingSheet, "A1", &rankingHeader); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			r.WorkerName,
			r.WorkerKey,
			r.CountryCode,
			r.RequiredSchedule,
			r.ExcludeHolidays,
			r.RequiredDays,
			r.RegisteredDays,
			orEmpty(r.CompliancePct),
			orEmpty(r.AvgSleep),
			orEmpty(r.MaxSleep),
			orEmpty(r.MinSleep),
		}
		if err := f.SetSheetRow(rankingSheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SetColWidth(rankingSheet, "A", "A", 28)
}

func writeKPI(f *excelize.File, ranking compliance.RankingResponse) error {
	rows := [][]any{
		{"Month", ranking.Month},
		{"From", ranking.Range.Start},
		{"To (exclusive)", ranking.Range.EndExclusive},
		{"Average compliance %", orEmpty(ranking.KPI.CompliancePct)},
		{"Average sleep", orEmpty(ranking.KPI.AvgSleep)},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(kpiSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// orEmpty leaves a blank cell for missing values.
func orEmpty[T any](p *T) any {
	if p == nil {
		return ""
	}
	return *p
}
