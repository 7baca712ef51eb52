package holiday

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedCountry = errors.New("holiday generation not supported for country")
	ErrSeedFailed         = errors.New("holiday seeding failed")
)

// UnsupportedCountryError is returned when generation is requested for a
// country without built-in holiday rules.
type UnsupportedCountryError struct {
	CountryCode string
	Supported   []string
}

func (e *UnsupportedCountryError) Error() string {
	return fmt.Sprintf("holiday generation not supported for country %q (supported: %v)", e.CountryCode, e.Supported)
}

func (e *UnsupportedCountryError) Unwrap() error {
	return ErrUnsupportedCountry
}

// SeedError reports how far a seeding run got before failing. Years before
// FailedYear were fully applied and stay in effect.
type SeedError struct {
	CountryCode    string
	StartYear      int
	CompletedYears int
	FailedYear     int
	Err            error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seeding %s failed at year %d after %d completed year(s): %v",
		e.CountryCode, e.FailedYear, e.CompletedYears, e.Err)
}

func (e *SeedError) Unwrap() []error {
	return []error{ErrSeedFailed, e.Err}
}
