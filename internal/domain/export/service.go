package export

import (
	"bytes"
	"context"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportService interface {
	// ExportRanking renders the monthly ranking as a spreadsheet and
	// returns it with a suggested file name.
	ExportRanking(ctx context.Context, month string) (*bytes.Buffer, string, error)
}
