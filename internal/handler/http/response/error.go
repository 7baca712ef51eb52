package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rbrd/isleep-backend-go/internal/domain/export"
	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var unsupported *holiday.UnsupportedCountryError
	if errors.As(err, &unsupported) {
		BadRequest(w, unsupported.Error(), map[string]string{
			"country_code": unsupported.CountryCode,
		})
		return
	}

	var seedErr *holiday.SeedError
	if errors.As(err, &seedErr) {
		writeError(w, http.StatusInternalServerError, "SEED_FAILED", seedErr.Error(), map[string]string{
			"country_code":    seedErr.CountryCode,
			"completed_years": strconv.Itoa(seedErr.CompletedYears),
			"failed_year":     strconv.Itoa(seedErr.FailedYear),
		})
		return
	}

	var storeErr *database.StoreError
	switch {
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrInvalidWorkerName):
		ValidationError(w, map[string]string{"worker_name": err.Error()})

	case errors.Is(err, export.ErrGenerateFailed):
		InternalServerError(w, err.Error())

	// Store failures surface the driver message
	case errors.As(err, &storeErr):
		writeError(w, http.StatusInternalServerError, "STORE_FAILURE", storeErr.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
