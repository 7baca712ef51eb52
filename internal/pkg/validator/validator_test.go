package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestHasMinLength(t *testing.T) {
	assert.True(t, HasMinLength("Jo", 2))
	assert.True(t, HasMinLength("Ñu", 2))
	assert.False(t, HasMinLength(" J ", 2))
	assert.False(t, HasMinLength("", 2))
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "2023-1-01", "20230101", "2023-01-01T00:00:00Z", "", " 2023-01-01"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}

	got, ok := IsValidDate("2026-01-10")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2026-01", "1999-12"}
	invalid := []string{"2026-00", "2026-13", "2026-1", "2026/01", "202601", "", "2026-01-01"}
	for _, month := range valid {
		if _, ok := IsValidMonth(month); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", month)
		}
	}
	for _, month := range invalid {
		if _, ok := IsValidMonth(month); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", month)
		}
	}
}

func TestParseMonth_ReportsField(t *testing.T) {
	_, err := ParseMonth("month", "2026-1")
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "month")
}

func TestIsWholeNumber(t *testing.T) {
	assert.True(t, IsWholeNumber(7))
	assert.True(t, IsWholeNumber(0))
	assert.False(t, IsWholeNumber(7.5))
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Error("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Error("IsInSlice('d') = true, want false")
	}
}
