package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
	defaults worker.Defaults
}

func NewWorkerService(repo worker.WorkerRepository, defaults worker.Defaults) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository: repo,
		defaults:         defaults,
	}
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context) (worker.ListWorkersResponse, error) {
	ws, err := s.WorkerRepository.ListActive(ctx)
	if err != nil {
		return worker.ListWorkersResponse{}, fmt.Errorf("failed to list workers: %w", err)
	}

	resp := worker.ListWorkersResponse{Workers: make([]worker.WorkerResponse, 0, len(ws))}
	for _, w := range ws {
		resp.Workers = append(resp.Workers, worker.NewWorkerResponse(w))
	}
	return resp, nil
}

// GetOrCreate implements worker.WorkerService.
func (s *WorkerServiceImpl) GetOrCreate(ctx context.Context, name string) (worker.Worker, error) {
	name = strings.TrimSpace(name)
	if !validator.HasMinLength(name, 2) {
		return worker.Worker{}, validator.Single("worker_name", "worker_name is required (at least 2 characters)")
	}

	key := worker.NormalizeKey(name)
	if key == "" {
		return worker.Worker{}, worker.ErrInvalidWorkerName
	}

	w, err := s.WorkerRepository.GetOrCreate(ctx, worker.Worker{
		Name:            name,
		Key:             key,
		CountryCode:     s.defaults.CountryCode,
		Timezone:        s.defaults.Timezone,
		Schedule:        s.defaults.Schedule,
		ExcludeHolidays: s.defaults.ExcludeHolidays,
		IsActive:        true,
	})
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to resolve worker %q: %w", key, err)
	}
	return w, nil
}

// UpdatePolicy implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdatePolicy(ctx context.Context, req worker.UpdatePolicyRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	current, err := s.WorkerRepository.GetByKey(ctx, req.WorkerKey)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.WorkerRepository.UpdatePolicy(ctx, req.Apply(current))
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to update worker %q: %w", req.WorkerKey, err)
	}

	slog.Info("Updated worker policy",
		"worker_key", updated.Key,
		"schedule", updated.Schedule,
		"exclude_holidays", updated.ExcludeHolidays,
		"is_active", updated.IsActive,
	)
	return worker.NewWorkerResponse(updated), nil
}
