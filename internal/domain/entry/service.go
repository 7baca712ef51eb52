package entry

import "context"

type EntryService interface {
	// Create validates the report, resolves or registers its worker and
	// appends the entry.
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
}
