package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/pkg/calendar"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(repo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: repo}
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, req holiday.ListHolidaysRequest) (holiday.ListHolidaysResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.ListHolidaysResponse{}, err
	}

	year := req.ParsedYear()
	country := holiday.NormalizeCountry(req.CountryCode)
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	hs, err := s.HolidayRepository.List(ctx, country, from, from.AddDate(1, 0, 0))
	if err != nil {
		return holiday.ListHolidaysResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	resp := holiday.ListHolidaysResponse{
		Year:        year,
		CountryCode: country,
		Holidays:    make([]holiday.HolidayResponse, 0, len(hs)),
	}
	for _, h := range hs {
		resp.Holidays = append(resp.Holidays, holiday.NewHolidayResponse(h))
	}
	return resp, nil
}

// Create implements holiday.HolidayService. An existing (date, country)
// pair is overwritten.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	h := holiday.Holiday{
		Date:        date,
		CountryCode: holiday.NormalizeCountry(req.CountryCode),
		Name:        strings.TrimSpace(req.Name),
		IsRequired:  req.IsRequired,
	}

	if err := s.HolidayRepository.Upsert(ctx, h); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to save holiday: %w", err)
	}
	return holiday.NewHolidayResponse(h), nil
}

// Delete implements holiday.HolidayService. Deleting a missing holiday is
// not an error.
func (s *HolidayServiceImpl) Delete(ctx context.Context, req holiday.DeleteHolidayRequest) (holiday.DeleteHolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.DeleteHolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	country := holiday.NormalizeCountry(req.CountryCode)

	deleted, err := s.HolidayRepository.Delete(ctx, date, country)
	if err != nil {
		return holiday.DeleteHolidayResponse{}, fmt.Errorf("failed to delete holiday: %w", err)
	}

	return holiday.DeleteHolidayResponse{
		Date:        req.Date,
		CountryCode: country,
		Deleted:     deleted,
	}, nil
}

// Seed implements holiday.HolidayService. Each year is written in one
// batch; years written before a failure stay in place.
func (s *HolidayServiceImpl) Seed(ctx context.Context, req holiday.SeedHolidaysRequest) (holiday.SeedHolidaysResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.SeedHolidaysResponse{}, err
	}

	country, start, years := req.Range()

	// fail on unsupported countries before writing anything
	if _, err := calendar.ForYear(start, country); err != nil {
		return holiday.SeedHolidaysResponse{}, err
	}

	resp := holiday.SeedHolidaysResponse{CountryCode: country, StartYear: start}
	for year := start; year < start+years; year++ {
		hs, err := calendar.ForYear(year, country)
		if err == nil {
			err = s.HolidayRepository.UpsertBatch(ctx, hs)
		}
		if err != nil {
			slog.Error("Holiday seeding failed",
				"country", country,
				"year", year,
				"completed_years", resp.SeededYears,
				"error", err,
			)
			return resp, &holiday.SeedError{
				CountryCode:    country,
				StartYear:      start,
				CompletedYears: resp.SeededYears,
				FailedYear:     year,
				Err:            err,
			}
		}

		resp.SeededYears++
		resp.Holidays += len(hs)
	}

	slog.Info("Seeded holidays",
		"country", country,
		"start_year", start,
		"years", resp.SeededYears,
		"holidays", resp.Holidays,
	)
	return resp, nil
}
