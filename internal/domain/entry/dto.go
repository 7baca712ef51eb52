package entry

import (
	"strings"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

// ========================================
// CREATE ENTRY
// ========================================

// CreateEntryRequest is a raw submission. Hours and minutes are floats so
// that fractional input can be reported as a validation error instead of a
// decode failure.
type CreateEntryRequest struct {
	WorkerName string   `json:"worker_name"`
	Date       string   `json:"date"`
	SleepH     *float64 `json:"sleep_h"`
	SleepM     *float64 `json:"sleep_m"`
	Status     string   `json:"status"`
	Source     string   `json:"source"`
	ChatID     *string  `json:"chat_id"`
	FileID     *string  `json:"file_id"`
	Notes      *string  `json:"notes"`
	RawText    *string  `json:"raw_text"`
	ImageURL   *string  `json:"image_url"`
	PDFURL     *string  `json:"pdf_url"`
}

// NormalizedStatus upper-cases the requested status, OK when empty.
func (r *CreateEntryRequest) NormalizedStatus() Status {
	s := strings.ToUpper(strings.TrimSpace(r.Status))
	if s == "" {
		return StatusOK
	}
	return Status(s)
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.HasMinLength(r.WorkerName, 2) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_name",
			Message: "worker_name is required (at least 2 characters)",
		})
	} else if worker.NormalizeKey(r.WorkerName) == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_name",
			Message: "worker_name must contain letters or digits",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	switch r.NormalizedStatus() {
	case StatusPending:
	case StatusOK:
		if r.SleepH == nil || r.SleepM == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "sleep_h",
				Message: "sleep_h and sleep_m are required unless status is PENDING",
			})
			break
		}
		if h := *r.SleepH; !validator.IsWholeNumber(h) || h < 0 || h > 24 {
			errs = append(errs, validator.ValidationError{
				Field:   "sleep_h",
				Message: "sleep_h must be an integer between 0 and 24",
			})
		}
		if m := *r.SleepM; !validator.IsWholeNumber(m) || m < 0 || m > 59 {
			errs = append(errs, validator.ValidationError{
				Field:   "sleep_m",
				Message: "sleep_m must be an integer between 0 and 59",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be OK or PENDING",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntry builds the stored entry for an already validated request.
// Worker identity, ID and CreatedAt are left to the caller.
func (r *CreateEntryRequest) ToEntry() Entry {
	date, _ := validator.IsValidDate(r.Date)

	e := Entry{
		Date:     date,
		Source:   strings.TrimSpace(r.Source),
		ChatID:   r.ChatID,
		FileID:   r.FileID,
		Notes:    r.Notes,
		RawText:  r.RawText,
		ImageURL: r.ImageURL,
		PDFURL:   r.PDFURL,
	}
	if e.Source == "" {
		e.Source = DefaultSource
	}

	if r.NormalizedStatus() == StatusPending {
		e.Status = StatusPending
		e.SleepText = PendingMarker
		return e
	}

	h, m := int(*r.SleepH), int(*r.SleepM)
	duration := h*60 + m
	e.Status = StatusOK
	e.SleepHours = h
	e.SleepMinutes = m
	e.SleepText = FormatDuration(h, m)
	e.DurationMin = &duration
	return e
}

type EntryResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id,omitempty"`
	WorkerName  string  `json:"worker_name"`
	WorkerKey   string  `json:"worker_key"`
	Date        string  `json:"date"`
	SleepH      int     `json:"sleep_h"`
	SleepM      int     `json:"sleep_m"`
	SleepText   string  `json:"sleep_text"`
	DurationMin *int    `json:"duration_min"`
	Status      Status  `json:"status"`
	Source      string  `json:"source"`
	ChatID      *string `json:"chat_id,omitempty"`
	FileID      *string `json:"file_id,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	RawText     *string `json:"raw_text,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	PDFURL      *string `json:"pdf_url,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		WorkerID:    e.WorkerID,
		WorkerName:  e.WorkerName,
		WorkerKey:   e.WorkerKey,
		Date:        e.Date.Format(validator.DateLayout),
		SleepH:      e.SleepHours,
		SleepM:      e.SleepMinutes,
		SleepText:   e.SleepText,
		DurationMin: e.DurationMin,
		Status:      e.Status,
		Source:      e.Source,
		ChatID:      e.ChatID,
		FileID:      e.FileID,
		Notes:       e.Notes,
		RawText:     e.RawText,
		ImageURL:    e.ImageURL,
		PDFURL:      e.PDFURL,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
