package validator

import (
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Single builds a one-field ValidationErrors value.
func Single(field, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: message}}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// HasMinLength reports whether s has at least n runes after trimming.
func HasMinLength(s string, n int) bool {
	return len([]rune(strings.TrimSpace(s))) >= n
}

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate accepts YYYY-MM-DD strings naming a real calendar day.
// The returned time is midnight UTC.
func IsValidDate(dateStr string) (time.Time, bool) {
	if !dateRegex.MatchString(dateStr) {
		return time.Time{}, false
	}
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

var monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// IsValidMonth accepts YYYY-MM strings with month 01..12.
// The returned time is the first day of the month, midnight UTC.
func IsValidMonth(monthStr string) (time.Time, bool) {
	if !monthRegex.MatchString(monthStr) {
		return time.Time{}, false
	}
	month, err := time.Parse(MonthLayout, monthStr)
	return month, err == nil
}

// ParseDate validates a YYYY-MM-DD field and reports failures under field.
func ParseDate(field, dateStr string) (time.Time, error) {
	date, ok := IsValidDate(dateStr)
	if !ok {
		return time.Time{}, Single(field, field+" must be a valid date (YYYY-MM-DD)")
	}
	return date, nil
}

// ParseMonth validates a YYYY-MM field and reports failures under field.
func ParseMonth(field, monthStr string) (time.Time, error) {
	month, ok := IsValidMonth(monthStr)
	if !ok {
		return time.Time{}, Single(field, field+" must be a valid month (YYYY-MM)")
	}
	return month, nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsWholeNumber reports whether f has no fractional part.
func IsWholeNumber(f float64) bool {
	return f == float64(int64(f))
}
