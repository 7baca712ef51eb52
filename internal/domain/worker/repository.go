package worker

import "context"

// WorkerRepository is the worker directory.
type WorkerRepository interface {
	// ListActive returns active workers ordered by name.
	ListActive(ctx context.Context) ([]Worker, error)

	// GetByKey returns ErrWorkerNotFound when no worker has the key.
	GetByKey(ctx context.Context, key string) (Worker, error)

	// GetOrCreate returns the worker with w.Key, inserting w when absent.
	// Concurrent calls for the same key yield the same row.
	GetOrCreate(ctx context.Context, w Worker) (Worker, error)

	// UpdatePolicy overwrites country, timezone, schedule, exclusion and
	// active flags of the worker identified by w.Key.
	UpdatePolicy(ctx context.Context, w Worker) (Worker, error)
}
