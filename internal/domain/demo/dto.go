package demo

// Source tags every entry created by the demo seeder.
const Source = "demo"

// Date is the day all demo reports are filed under.
const Date = "2026-01-10"

type SeedResponse struct {
	Date    string   `json:"date"`
	Created int      `json:"created"`
	Entries []string `json:"entries"`
}

type ClearResponse struct {
	Deleted int64 `json:"deleted"`
}
