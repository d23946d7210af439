package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// HTTP
	AllowedOrigin string

	// Workout model backend (optional; the template generator is the fallback)
	ModelAPIKey  string
	ModelBaseURL string
	ModelName    string
	ModelTimeout time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "TrackFit"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "3001"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/trackfit.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 720*time.Hour), // 30 days

		// HTTP
		AllowedOrigin: envString("ALLOWED_ORIGIN", "http://localhost:5173"),

		// Workout model backend
		ModelAPIKey:  envString("MODEL_API_KEY", ""),
		ModelBaseURL: envString("MODEL_BASE_URL", "https://api.openai.com/v1"),
		ModelName:    envString("MODEL_NAME", "gpt-4o-mini"),
		ModelTimeout: envDuration("MODEL_TIMEOUT", 30*time.Second),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required settings
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures deployment-critical settings are supplied
// explicitly instead of leaking development defaults into production.
func validateProduction(cfg *Config) {
	if os.Getenv("ALLOWED_ORIGIN") == "" {
		slog.Error("production deployment requires ALLOWED_ORIGIN",
			"hint", "set APP_ENV=development for local testing")
		os.Exit(1)
	}
	if os.Getenv("DB_CONNECTION") == "" {
		slog.Error("production deployment requires DB_CONNECTION")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
