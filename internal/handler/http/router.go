package http

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/rbrd/isleep-backend-go/internal/config"
	"github.com/rbrd/isleep-backend-go/internal/handler/http/middleware"
)

const version = "v1.0.0"

// NewLogger builds the JSON logger shared by request logging and services.
func NewLogger(app config.AppConfig) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLevel(app.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app.Name),
		slog.String("version", version),
		slog.String("env", app.Env),
	)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

type Handlers struct {
	Compliance ComplianceHandler
	Entry      EntryHandler
	Worker     WorkerHandler
	Holiday    HolidayHandler
	Demo       DemoHandler
}

func NewRouter(cfg config.HTTPConfig, logger *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(corsOptions(cfg.AllowedOrigin)))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/today", h.Compliance.Today)
		r.Get("/entries", h.Compliance.Entries)
		r.Get("/ranking", h.Compliance.Ranking)
		r.Get("/ranking/export", h.Compliance.ExportRanking)
		r.Get("/workers", h.Worker.List)
		r.Get("/holidays", h.Holiday.List)

		// Requires API key
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAPIKey(cfg.APIKey))

			r.Post("/entries", h.Entry.Create)
			r.Put("/workers/{key}", h.Worker.UpdatePolicy)

			r.Post("/holidays", h.Holiday.Create)
			r.Delete("/holidays", h.Holiday.Delete)
			r.Post("/holidays/seed", h.Holiday.Seed)
			r.Post("/demo/seed", h.Demo.Seed)
			r.Delete("/demo/clear", h.Demo.Clear)
		})
	})

	return r
}

func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.APIKeyHeader},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}
	// Credentials cannot be combined with a wildcard origin.
	for _, o := range origins {
		if o == "*" {
			return opts
		}
	}
	opts.AllowCredentials = true
	return opts
}
