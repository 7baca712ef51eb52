package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Seed(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := holiday.ListHolidaysRequest{
		Year:        query.Get("year"),
		CountryCode: query.Get("country"),
	}

	holidays, err := h.holidayService.List(r.Context(), req)
	if err != nil {
		slog.Error("Failed to list holidays", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create holiday", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday saved successfully", created)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := holiday.DeleteHolidayRequest{
		Date:        query.Get("date"),
		CountryCode: query.Get("country"),
	}

	deleted, err := h.holidayService.Delete(r.Context(), req)
	if err != nil {
		slog.Error("Failed to delete holiday", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, deleted)
}

// Seed implements HolidayHandler. An empty body seeds the defaults.
func (h *HolidayHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	var req holiday.SeedHolidaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Seed holidays decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	seeded, err := h.holidayService.Seed(r.Context(), req)
	if err != nil {
		slog.Error("Failed to seed holidays", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holidays seeded successfully", seeded)
}
