package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UpdatePolicy(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list workers", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// UpdatePolicy implements WorkerHandler.
func (h *WorkerHandlerImpl) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	var req worker.UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update worker policy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.WorkerKey = chi.URLParam(r, "key")

	updated, err := h.workerService.UpdatePolicy(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update worker policy", "error", err, "worker_key", req.WorkerKey)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker policy updated successfully", updated)
}
