package holiday

import (
	"strconv"
	"strings"

	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

const (
	MinYear = 2000
	MaxYear = 2100

	DefaultSeedStartYear = 2026
	DefaultSeedYears     = 5
	MaxSeedYears         = 10
)

// NormalizeCountry upper-cases a country code, defaulting to PE.
func NormalizeCountry(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCountry
	}
	return code
}

type HolidayResponse struct {
	Date        string `json:"date"`
	CountryCode string `json:"country_code"`
	Name        string `json:"name"`
	IsRequired  bool   `json:"is_required"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		Date:        h.Date.Format(validator.DateLayout),
		CountryCode: h.CountryCode,
		Name:        h.Name,
		IsRequired:  h.IsRequired,
	}
}

// ========================================
// LIST
// ========================================

type ListHolidaysRequest struct {
	Year        string
	CountryCode string
}

func (r *ListHolidaysRequest) Validate() error {
	year, err := strconv.Atoi(r.Year)
	if err != nil || year < MinYear || year > MaxYear {
		return validator.Single("year", "year must be an integer between 2000 and 2100")
	}
	return nil
}

// ParsedYear assumes Validate succeeded.
func (r *ListHolidaysRequest) ParsedYear() int {
	year, _ := strconv.Atoi(r.Year)
	return year
}

type ListHolidaysResponse struct {
	Year        int               `json:"year"`
	CountryCode string            `json:"country"`
	Holidays    []HolidayResponse `json:"holidays"`
}

// ========================================
// CREATE / DELETE
// ========================================

type CreateHolidayRequest struct {
	Date        string `json:"date"`
	CountryCode string `json:"country_code"`
	Name        string `json:"name"`
	IsRequired  bool   `json:"is_required"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	if !validator.HasMinLength(r.Name, 2) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required (at least 2 characters)",
		})
	}

	if len(NormalizeCountry(r.CountryCode)) != 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "country_code",
			Message: "country_code must be a two-letter code",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteHolidayRequest struct {
	Date        string
	CountryCode string
}

func (r *DeleteHolidayRequest) Validate() error {
	if _, ok := validator.IsValidDate(r.Date); !ok {
		return validator.Single("date", "date must be a valid date (YYYY-MM-DD)")
	}
	return nil
}

type DeleteHolidayResponse struct {
	Date        string `json:"date"`
	CountryCode string `json:"country_code"`
	Deleted     bool   `json:"deleted"`
}

// ========================================
// SEED
// ========================================

type SeedHolidaysRequest struct {
	CountryCode string `json:"country_code"`
	StartYear   *int   `json:"start_year"`
	Years       *int   `json:"years"`
}

func (r *SeedHolidaysRequest) Validate() error {
	if r.StartYear != nil && (*r.StartYear < MinYear || *r.StartYear > MaxYear) {
		return validator.Single("start_year", "start_year must be between 2000 and 2100")
	}
	return nil
}

// Range returns the normalized country, first year and year count.
// The count defaults to 5 and is clamped to [1, 10].
func (r *SeedHolidaysRequest) Range() (string, int, int) {
	start := DefaultSeedStartYear
	if r.StartYear != nil {
		start = *r.StartYear
	}

	years := DefaultSeedYears
	if r.Years != nil {
		years = *r.Years
	}
	years = min(MaxSeedYears, max(1, years))

	return NormalizeCountry(r.CountryCode), start, years
}

type SeedHolidaysResponse struct {
	CountryCode string `json:"country_code"`
	StartYear   int    `json:"start_year"`
	SeededYears int    `json:"seeded_years"`
	Holidays    int    `json:"holidays"`
}
