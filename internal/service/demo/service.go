package demo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rbrd/isleep-backend-go/internal/domain/demo"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
)

type DemoServiceImpl struct {
	entry.EntryRepository
	entryService entry.EntryService
}

func NewDemoService(repo entry.EntryRepository, entryService entry.EntryService) demo.DemoService {
	return &DemoServiceImpl{
		EntryRepository: repo,
		entryService:    entryService,
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// demoReports covers one report per sleep status.
func demoReports() []entry.CreateEntryRequest {
	return []entry.CreateEntryRequest{
		{
			WorkerName: "Juan Perez",
			SleepH:     floatPtr(7),
			SleepM:     floatPtr(15),
			Status:     string(entry.StatusOK),
			ImageURL:   strPtr("/media/example/juan_ok.jpg"),
			PDFURL:     strPtr("/media/example/juan_ok.pdf"),
		},
		{
			WorkerName: "Carlos Diaz",
			SleepH:     floatPtr(4),
			SleepM:     floatPtr(30),
			Status:     string(entry.StatusOK),
			ImageURL:   strPtr("/media/example/carlos_low.jpg"),
			PDFURL:     strPtr("/media/example/carlos_low.pdf"),
		},
		{
			WorkerName: "Luis Gomez",
			Status:     string(entry.StatusPending),
			ImageURL:   strPtr("/media/example/luis_fail.jpg"),
			PDFURL:     strPtr("/media/example/luis_fail.pdf"),
			Notes:      strPtr("OCR falló (demo)"),
		},
	}
}

// Seed implements demo.DemoService.
func (s *DemoServiceImpl) Seed(ctx context.Context) (demo.SeedResponse, error) {
	resp := demo.SeedResponse{Date: demo.Date, Entries: []string{}}

	for _, req := range demoReports() {
		req.Date = demo.Date
		req.Source = demo.Source

		created, err := s.entryService.Create(ctx, req)
		if err != nil {
			return resp, fmt.Errorf("failed to seed demo entry for %s: %w", req.WorkerName, err)
		}
		resp.Created++
		resp.Entries = append(resp.Entries, created.ID)
	}

	slog.Info("Seeded demo data", "date", demo.Date, "entries", resp.Created)
	return resp, nil
}

// Clear implements demo.DemoService.
func (s *DemoServiceImpl) Clear(ctx context.Context) (demo.ClearResponse, error) {
	n, err := s.EntryRepository.DeleteBySource(ctx, demo.Source)
	if err != nil {
		return demo.ClearResponse{}, fmt.Errorf("failed to clear demo entries: %w", err)
	}

	slog.Info("Cleared demo data", "deleted", n)
	return demo.ClearResponse{Deleted: n}, nil
}
