package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
)

type EntryServiceImpl struct {
	entry.EntryRepository
	workerService worker.WorkerService
	now           func() time.Time
}

func NewEntryService(repo entry.EntryRepository, workerService worker.WorkerService) entry.EntryService {
	return &EntryServiceImpl{
		EntryRepository: repo,
		workerService:   workerService,
		now:             time.Now,
	}
}

// Create implements entry.EntryService.
func (s *EntryServiceImpl) Create(ctx context.Context, req entry.CreateEntryRequest) (entry.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return entry.EntryResponse{}, err
	}

	w, err := s.workerService.GetOrCreate(ctx, req.WorkerName)
	if err != nil {
		return entry.EntryResponse{}, err
	}

	e := req.ToEntry()
	e.ID = uuid.NewString()
	e.WorkerID = w.ID
	e.WorkerName = w.Name
	e.WorkerKey = w.Key
	e.CreatedAt = s.now().UTC()

	created, err := s.EntryRepository.Create(ctx, e)
	if err != nil {
		return entry.EntryResponse{}, fmt.Errorf("failed to create entry: %w", err)
	}

	slog.Info("Created sleep entry",
		"entry_id", created.ID,
		"worker_key", created.WorkerKey,
		"date", req.Date,
		"status", created.Status,
		"source", created.Source,
	)
	return entry.NewEntryResponse(created), nil
}
