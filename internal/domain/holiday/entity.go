package holiday

import "time"

// Holiday is unique per (Date, CountryCode). IsRequired marks a mandatory
// holiday: it never waives a worker's reporting requirement.
type Holiday struct {
	Date        time.Time
	CountryCode string
	Name        string
	IsRequired  bool
}

const DefaultCountry = "PE"
