package worker

import "context"

type WorkerService interface {
	// List returns the active roster.
	List(ctx context.Context) (ListWorkersResponse, error)

	// GetOrCreate resolves a display name to its worker, creating it with
	// the configured defaults on first use.
	GetOrCreate(ctx context.Context, name string) (Worker, error)

	// UpdatePolicy changes the reporting policy of an existing worker.
	UpdatePolicy(ctx context.Context, req UpdatePolicyRequest) (WorkerResponse, error)
}
