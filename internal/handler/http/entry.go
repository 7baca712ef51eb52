package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/handler/http/response"
)

type EntryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
}

type EntryHandlerImpl struct {
	entryService entry.EntryService
}

func NewEntryHandler(entryService entry.EntryService) EntryHandler {
	return &EntryHandlerImpl{entryService: entryService}
}

// Create implements EntryHandler.
func (h *EntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req entry.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.entryService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create entry", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entry created successfully", created)
}
