package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rbrd/isleep-backend-go/internal/config"
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/domain/holiday"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	appHTTP "github.com/rbrd/isleep-backend-go/internal/handler/http"
	"github.com/rbrd/isleep-backend-go/internal/pkg/cron"
	"github.com/rbrd/isleep-backend-go/internal/pkg/database"
	"github.com/rbrd/isleep-backend-go/internal/repository/memory"
	"github.com/rbrd/isleep-backend-go/internal/repository/postgresql"
	"github.com/rbrd/isleep-backend-go/internal/repository/sqlite"
	complianceService "github.com/rbrd/isleep-backend-go/internal/service/compliance"
	demoService "github.com/rbrd/isleep-backend-go/internal/service/demo"
	entryService "github.com/rbrd/isleep-backend-go/internal/service/entry"
	exportService "github.com/rbrd/isleep-backend-go/internal/service/export"
	holidayService "github.com/rbrd/isleep-backend-go/internal/service/holiday"
	workerService "github.com/rbrd/isleep-backend-go/internal/service/worker"
)

type repositories struct {
	workers  worker.WorkerRepository
	entries  entry.EntryRepository
	holidays holiday.HolidayRepository
	close    func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return &repositories{
			workers:  postgresql.NewWorkerRepository(db),
			entries:  postgresql.NewEntryRepository(db),
			holidays: postgresql.NewHolidayRepository(db),
			close:    db.Close,
		}, nil

	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		store, err := sqlite.New(ctx, db)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return &repositories{
			workers:  sqlite.NewWorkerRepository(store),
			entries:  sqlite.NewEntryRepository(store),
			holidays: sqlite.NewHolidayRepository(store),
			close:    func() { store.Close() },
		}, nil

	default:
		slog.Warn("Using in-memory storage, data is lost on restart")
		return &repositories{
			workers:  memory.NewWorkerRepository(),
			entries:  memory.NewEntryRepository(),
			holidays: memory.NewHolidayRepository(),
			close:    func() {},
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	workerSvc := workerService.NewWorkerService(repos.workers, cfg.WorkerDefaults())
	entrySvc := entryService.NewEntryService(repos.entries, workerSvc)
	holidaySvc := holidayService.NewHolidayService(repos.holidays)
	complianceSvc := complianceService.NewComplianceService(repos.workers, repos.entries, repos.holidays, cfg.Compliance())
	exportSvc := exportService.NewExportService(complianceSvc)
	demoSvc := demoService.NewDemoService(repos.entries, entrySvc)

	router := appHTTP.NewRouter(cfg.HTTP, logger, appHTTP.Handlers{
		Compliance: appHTTP.NewComplianceHandler(complianceSvc, exportSvc),
		Entry:      appHTTP.NewEntryHandler(entrySvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Demo:       appHTTP.NewDemoHandler(demoSvc),
	})

	scheduler := cron.NewScheduler(ctx)
	if cfg.Holiday.AutoSeed {
		cron.NewHolidayJobs(holidaySvc, cfg.Holiday.AutoSeedCountries, cfg.Holiday.AutoSeedInterval).RegisterJobs(scheduler)
	}
	scheduler.Start()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	scheduler.Stop()
	slog.Info("Server stopped")
}
