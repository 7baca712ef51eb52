package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
)

// SupportedCountries lists the countries with built-in holiday rules.
var SupportedCountries = []string{"PE"}

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

var peruFixed = []fixedHoliday{
	{time.January, 1, "Año Nuevo"},
	{time.May, 1, "Día del Trabajo"},
	{time.June, 29, "San Pedro y San Pablo"},
	{time.July, 28, "Fiestas Patrias"},
	{time.July, 29, "Fiestas Patrias"},
	{time.August, 30, "Santa Rosa de Lima"},
	{time.October, 8, "Combate de Angamos"},
	{time.November, 1, "Todos los Santos"},
	{time.December, 8, "Inmaculada Concepción"},
	{time.December, 25, "Navidad"},
}

// Easter returns Easter Sunday of year (Gregorian calendar) at midnight UTC,
// using the Anonymous Gregorian algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ForYear generates the built-in holidays of country for year, ordered by
// date. Every generated holiday is optional (IsRequired false).
func ForYear(year int, country string) ([]holiday.Holiday, error) {
	country = strings.ToUpper(strings.TrimSpace(country))

	switch country {
	case "PE":
		return peru(year), nil
	default:
		return nil, &holiday.UnsupportedCountryError{
			CountryCode: country,
			Supported:   SupportedCountries,
		}
	}
}

func peru(year int) []holiday.Holiday {
	out := make([]holiday.Holiday, 0, len(peruFixed)+2)
	for _, f := range peruFixed {
		out = append(out, holiday.Holiday{
			Date:        time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC),
			CountryCode: "PE",
			Name:        f.name,
		})
	}

	easter := Easter(year)
	out = append(out,
		holiday.Holiday{Date: easter.AddDate(0, 0, -3), CountryCode: "PE", Name: "Jueves Santo"},
		holiday.Holiday{Date: easter.AddDate(0, 0, -2), CountryCode: "PE", Name: "Viernes Santo"},
	)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
