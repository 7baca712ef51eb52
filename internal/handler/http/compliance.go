package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rbrd/isleep-backend-go/internal/domain/compliance"
	"github.com/rbrd/isleep-backend-go/internal/domain/export"
	"github.com/rbrd/isleep-backend-go/internal/handler/http/response"
)

type ComplianceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Entries(w http.ResponseWriter, r *http.Request)
	Ranking(w http.ResponseWriter, r *http.Request)
	ExportRanking(w http.ResponseWriter, r *http.Request)
}

type ComplianceHandlerImpl struct {
	complianceService compliance.ComplianceService
	exportService     export.ExportService
}

func NewComplianceHandler(complianceService compliance.ComplianceService, exportService export.ExportService) ComplianceHandler {
	return &ComplianceHandlerImpl{
		complianceService: complianceService,
		exportService:     exportService,
	}
}

// Today implements ComplianceHandler.
func (h *ComplianceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.complianceService.GetToday(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		slog.Error("Failed to get today snapshot", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// Entries implements ComplianceHandler.
func (h *ComplianceHandlerImpl) Entries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.complianceService.GetEntries(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Failed to get month entries", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Ranking implements ComplianceHandler.
func (h *ComplianceHandlerImpl) Ranking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.complianceService.GetRanking(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Failed to get ranking", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, ranking)
}

// ExportRanking implements ComplianceHandler.
func (h *ComplianceHandlerImpl) ExportRanking(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.exportService.ExportRanking(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Failed to export ranking", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write export", "error", err)
	}
}
