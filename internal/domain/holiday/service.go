package holiday

import "context"

type HolidayService interface {
	List(ctx context.Context, req ListHolidaysRequest) (ListHolidaysResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, req DeleteHolidayRequest) (DeleteHolidayResponse, error)

	// Seed generates and upserts built-in holidays for a range of years.
	// It can be re-run safely; a failure returns *SeedError.
	Seed(ctx context.Context, req SeedHolidaysRequest) (SeedHolidaysResponse, error)
}
