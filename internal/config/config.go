package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/rbrd/isleep-backend-go/internal/domain/compliance"
	"github.com/rbrd/isleep-backend-go/internal/domain/worker"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	HTTP     HTTPConfig
	Policy   PolicyConfig
	Holiday  HolidayConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name     string `env:"APP_NAME" envDefault:"isleep-backend"`
	Port     int    `env:"APP_PORT" envDefault:"8080"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       int    `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" envDefault:"isleep"`
	SSLMode    string `env:"DB_SSL_MODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"isleep.db"`
}

type HTTPConfig struct {
	APIKey        string   `env:"API_KEY"`
	AllowedOrigin []string `env:"ALLOWED_ORIGIN" envSeparator:"," envDefault:"*"`
}

// PolicyConfig is the default policy of newly seen workers plus the
// sleep threshold used for classification.
type PolicyConfig struct {
	MinSleepMinutes        int    `env:"MIN_SLEEP_MINUTES" envDefault:"345"`
	DefaultCountry         string `env:"DEFAULT_COUNTRY" envDefault:"PE"`
	DefaultTimezone        string `env:"DEFAULT_TIMEZONE" envDefault:"America/Lima"`
	DefaultSchedule        string `env:"DEFAULT_REQUIRED_SCHEDULE" envDefault:"MON_FRI"`
	DefaultExcludeHolidays bool   `env:"DEFAULT_EXCLUDE_HOLIDAYS" envDefault:"true"`
}

type HolidayConfig struct {
	AutoSeed          bool          `env:"HOLIDAY_AUTOSEED" envDefault:"false"`
	AutoSeedCountries []string      `env:"HOLIDAY_AUTOSEED_COUNTRIES" envSeparator:"," envDefault:"PE"`
	AutoSeedInterval  time.Duration `env:"HOLIDAY_AUTOSEED_INTERVAL" envDefault:"24h"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Cannot load .env file, using environment variables", "error", err)
	}

	return FromEnv()
}

// FromEnv parses the process environment without touching .env.
func FromEnv() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	config.Database.Driver = strings.ToLower(strings.TrimSpace(config.Database.Driver))
	config.Policy.DefaultCountry = strings.ToUpper(strings.TrimSpace(config.Policy.DefaultCountry))
	for i, c := range config.Holiday.AutoSeedCountries {
		config.Holiday.AutoSeedCountries[i] = strings.ToUpper(strings.TrimSpace(c))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("DB_DRIVER must be one of: %s, %s, %s", DriverPostgres, DriverSQLite, DriverMemory)
	}

	if c.Policy.MinSleepMinutes < 0 || c.Policy.MinSleepMinutes > 24*60 {
		return fmt.Errorf("MIN_SLEEP_MINUTES must be between 0 and 1440")
	}
	if !validator.IsInSlice(c.Policy.DefaultSchedule, worker.ScheduleValues) {
		return fmt.Errorf("DEFAULT_REQUIRED_SCHEDULE must be one of: %s", strings.Join(worker.ScheduleValues, ", "))
	}
	if _, err := time.LoadLocation(c.Policy.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid DEFAULT_TIMEZONE: %w", err)
	}
	if len(c.Policy.DefaultCountry) != 2 {
		return fmt.Errorf("DEFAULT_COUNTRY must be a two-letter code")
	}
	if c.Holiday.AutoSeed && c.Holiday.AutoSeedInterval <= 0 {
		return fmt.Errorf("HOLIDAY_AUTOSEED_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return dsn.String()
}

func (c *Config) WorkerDefaults() worker.Defaults {
	return worker.Defaults{
		CountryCode:     c.Policy.DefaultCountry,
		Timezone:        c.Policy.DefaultTimezone,
		Schedule:        worker.Schedule(c.Policy.DefaultSchedule),
		ExcludeHolidays: c.Policy.DefaultExcludeHolidays,
	}
}

func (c *Config) Compliance() compliance.Config {
	return compliance.Config{MinSleepMinutes: c.Policy.MinSleepMinutes}
}
