package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port string
	Env  string

	Store StoreConfig

	ListLimit   int
	SeedOnStart bool

	AdminJWTSecret   string
	AdminTokenExpiry time.Duration

	MetricsAddr string

	DefaultWeatherLocation string
}

type StoreConfig struct {
	Driver      string
	DatabaseURL string
	MaxConns    int32
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	tokenExpiry, err := time.ParseDuration(getEnv("ADMIN_TOKEN_EXPIRY", "720h"))
	if err != nil {
		tokenExpiry = 720 * time.Hour
	}

	maxConns, err := getEnvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}

	listLimit, err := getEnvInt("LIST_LIMIT", 1000)
	if err != nil {
		return nil, err
	}

	seed, err := strconv.ParseBool(getEnv("SEED_ON_START", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_ON_START: %w", err)
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Store: StoreConfig{
			Driver:      getEnv("STORE_DRIVER", DriverPostgres),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			MaxConns:    int32(maxConns),
		},

		ListLimit:   listLimit,
		SeedOnStart: seed,

		AdminJWTSecret:   getEnv("ADMIN_JWT_SECRET", ""),
		AdminTokenExpiry: tokenExpiry,

		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),

		DefaultWeatherLocation: getEnv("DEFAULT_WEATHER_LOCATION", "Delhi"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s store", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.ListLimit <= 0 {
		return fmt.Errorf("LIST_LIMIT must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AdminAuthEnabled reports whether mutating routes require an admin token.
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminJWTSecret != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
