package worker

import (
	"strings"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

type WorkerResponse struct {
	WorkerName       string `json:"worker_name"`
	WorkerKey        string `json:"worker_key"`
	CountryCode      string `json:"country_code"`
	Timezone         string `json:"timezone"`
	RequiredSchedule string `json:"required_schedule"`
	ExcludeHolidays  bool   `json:"exclude_holidays"`
	IsActive         bool   `json:"is_active"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		WorkerName:       w.Name,
		WorkerKey:        w.Key,
		CountryCode:      w.CountryCode,
		Timezone:         w.Timezone,
		RequiredSchedule: string(w.Schedule),
		ExcludeHolidays:  w.ExcludeHolidays,
		IsActive:         w.IsActive,
	}
}

type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

// UpdatePolicyRequest changes only the fields that are set.
type UpdatePolicyRequest struct {
	WorkerKey        string  `json:"-"`
	CountryCode      *string `json:"country_code"`
	Timezone         *string `json:"timezone"`
	RequiredSchedule *string `json:"required_schedule"`
	ExcludeHolidays  *bool   `json:"exclude_holidays"`
	IsActive         *bool   `json:"is_active"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerKey) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_key",
			Message: "worker_key is required",
		})
	}

	if r.CountryCode != nil && len(strings.TrimSpace(*r.CountryCode)) != 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "country_code",
			Message: "country_code must be a two-letter code",
		})
	}

	if r.Timezone != nil {
		if _, err := time.LoadLocation(*r.Timezone); err != nil || validator.IsEmpty(*r.Timezone) {
			errs = append(errs, validator.ValidationError{
				Field:   "timezone",
				Message: "timezone must be a valid IANA timezone",
			})
		}
	}

	if r.RequiredSchedule != nil && !validator.IsInSlice(*r.RequiredSchedule, ScheduleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "required_schedule",
			Message: "required_schedule must be one of: " + strings.Join(ScheduleValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply returns w with the requested changes.
func (r *UpdatePolicyRequest) Apply(w Worker) Worker {
	if r.CountryCode != nil {
		w.CountryCode = strings.ToUpper(strings.TrimSpace(*r.CountryCode))
	}
	if r.Timezone != nil {
		w.Timezone = *r.Timezone
	}
	if r.RequiredSchedule != nil {
		w.Schedule = Schedule(*r.RequiredSchedule)
	}
	if r.ExcludeHolidays != nil {
		w.ExcludeHolidays = *r.ExcludeHolidays
	}
	if r.IsActive != nil {
		w.IsActive = *r.IsActive
	}
	return w
}
