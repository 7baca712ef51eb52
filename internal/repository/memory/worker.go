// Package memory provides map-backed repositories for tests and local runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
)

type workerRepository struct {
	mu      sync.RWMutex
	workers map[string]worker.Worker
}

func NewWorkerRepository() worker.WorkerRepository {
	return &workerRepository{workers: make(map[string]worker.Worker)}
}

// ListActive implements worker.WorkerRepository.
func (r *workerRepository) ListActive(_ context.Context) ([]worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]worker.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		if w.IsActive {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// GetByKey implements worker.WorkerRepository.
func (r *workerRepository) GetByKey(_ context.Context, key string) (worker.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.workers[key]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

// GetOrCreate implements worker.WorkerRepository.
func (r *workerRepository) GetOrCreate(_ context.Context, w worker.Worker) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.workers[w.Key]; ok {
		return existing, nil
	}

	now := time.Now().UTC()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w.CreatedAt, w.UpdatedAt = now, now
	r.workers[w.Key] = w
	return w, nil
}

// UpdatePolicy implements worker.WorkerRepository.
func (r *workerRepository) UpdatePolicy(_ context.Context, w worker.Worker) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.workers[w.Key]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	existing.CountryCode = w.CountryCode
	existing.Timezone = w.Timezone
	existing.Schedule = w.Schedule
	existing.ExcludeHolidays = w.ExcludeHolidays
	existing.IsActive = w.IsActive
	existing.UpdatedAt = time.Now().UTC()
	r.workers[w.Key] = existing
	return existing, nil
}
