package compliance

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/domain/compliance"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/calendar"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type ComplianceServiceImpl struct {
	worker.WorkerRepository
	entry.EntryRepository
	holiday.HolidayRepository
	cfg compliance.Config
}

func NewComplianceService(
	workerRepo worker.WorkerRepository,
	entryRepo entry.EntryRepository,
	holidayRepo holiday.HolidayRepository,
	cfg compliance.Config,
) compliance.ComplianceService {
	return &ComplianceServiceImpl{
		WorkerRepository:  workerRepo,
		EntryRepository:   entryRepo,
		HolidayRepository: holidayRepo,
		cfg:               cfg,
	}
}

// GetToday implements compliance.ComplianceService.
func (s *ComplianceServiceImpl) GetToday(ctx context.Context, dateStr string) (compliance.TodayResponse, error) {
	date, err := validator.ParseDate("date", dateStr)
	if err != nil {
		return compliance.TodayResponse{}, err
	}

	var (
		roster []worker.Worker
		raw    []entry.Entry
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ws, err := s.WorkerRepository.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list active workers: %w", err)
		}
		roster = ws
		return nil
	})

	g.Go(func() error {
		es, err := s.EntryRepository.ListByDate(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to list entries for %s: %w", dateStr, err)
		}
		raw = es
		return nil
	})

	if err := g.Wait(); err != nil {
		return compliance.TodayResponse{}, err
	}

	holidays, err := s.holidaysOn(ctx, date, roster)
	if err != nil {
		return compliance.TodayResponse{}, err
	}

	return BuildSnapshot(date, roster, Consolidate(raw), holidays, s.cfg.MinSleepMinutes), nil
}

// holidaysOn looks up the holiday of every distinct roster country once,
// concurrently.
func (s *ComplianceServiceImpl) holidaysOn(ctx context.Context, date time.Time, roster []worker.Worker) (map[string]*holiday.Holiday, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]*holiday.Holiday)
	)

	g, gCtx := errgroup.WithContext(ctx)
	seen := make(map[string]bool)
	for _, w := range roster {
		country := w.CountryCode
		if seen[country] {
			continue
		}
		seen[country] = true

		g.Go(func() error {
			h, err := s.HolidayRepository.FindByDate(gCtx, date, country)
			if err != nil {
				return fmt.Errorf("failed to look up holiday for %s: %w", country, err)
			}
			mu.Lock()
			out[country] = h
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEntries implements compliance.ComplianceService.
func (s *ComplianceServiceImpl) GetEntries(ctx context.Context, monthStr string) (compliance.EntriesResponse, error) {
	month, err := validator.ParseMonth("month", monthStr)
	if err != nil {
		return compliance.EntriesResponse{}, err
	}
	period := compliance.MonthPeriod(month)

	var (
		rawCount int
		raw      []entry.Entry
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.EntryRepository.CountByRange(gCtx, period.Start, period.EndExclusive)
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}
		rawCount = n
		return nil
	})

	g.Go(func() error {
		es, err := s.EntryRepository.ListByRange(gCtx, period.Start, period.EndExclusive)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		raw = es
		return nil
	})

	if err := g.Wait(); err != nil {
		return compliance.EntriesResponse{}, err
	}

	canonical := Consolidate(raw)
	sort.SliceStable(canonical, func(i, j int) bool {
		a, b := canonical[i], canonical[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return strings.Compare(a.WorkerName, b.WorkerName) < 0
	})

	entries := make([]entry.EntryResponse, 0, len(canonical))
	for _, e := range canonical {
		entries = append(entries, entry.NewEntryResponse(e))
	}

	return compliance.EntriesResponse{
		Month:             monthStr,
		Range:             period.Range(),
		RawCount:          rawCount,
		ConsolidatedCount: len(entries),
		Entries:           entries,
	}, nil
}

// GetRanking implements compliance.ComplianceService.
func (s *ComplianceServiceImpl) GetRanking(ctx context.Context, monthStr string) (compliance.RankingResponse, error) {
	month, err := validator.ParseMonth("month", monthStr)
	if err != nil {
		return compliance.RankingResponse{}, err
	}
	period := compliance.MonthPeriod(month)

	var (
		roster   []worker.Worker
		raw      []entry.Entry
		holidays []holiday.Holiday
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ws, err := s.WorkerRepository.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list active workers: %w", err)
		}
		roster = ws
		return nil
	})

	g.Go(func() error {
		es, err := s.EntryRepository.ListByRange(gCtx, period.Start, period.EndExclusive)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		raw = es
		return nil
	})

	g.Go(func() error {
		hs, err := s.HolidayRepository.ListRange(gCtx, period.Start, period.EndExclusive)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		holidays = hs
		return nil
	})

	if err := g.Wait(); err != nil {
		return compliance.RankingResponse{}, err
	}

	ranking := Aggregate(period, roster, Consolidate(raw), calendar.NewIndex(holidays))

	return compliance.RankingResponse{
		Month: monthStr,
		Range: period.Range(),
		KPI:   ranking.KPI,
		Rows:  ranking.Rows,
	}, nil
}
