package worker

import "errors"

var (
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrInvalidWorkerName = errors.New("worker_name does not produce a valid worker key")
)
