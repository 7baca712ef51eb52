package http

import (
	"log/slog"
	"net/http"

	"github.com/rbrd/isleep-backend-go/internal/domain/demo"
	"github.com/rbrd/isleep-backend-go/internal/handler/http/response"
)

type DemoHandler interface {
	Seed(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type DemoHandlerImpl struct {
	demoService demo.DemoService
}

func NewDemoHandler(demoService demo.DemoService) DemoHandler {
	return &DemoHandlerImpl{demoService: demoService}
}

// Seed implements DemoHandler.
func (h *DemoHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.demoService.Seed(r.Context())
	if err != nil {
		slog.Error("Failed to seed demo data", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Demo data seeded", seeded)
}

// Clear implements DemoHandler.
func (h *DemoHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.demoService.Clear(r.Context())
	if err != nil {
		slog.Error("Failed to clear demo data", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Demo data cleared", cleared)
}
