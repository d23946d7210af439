package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	if cfg.AppName != "TrackFit" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.Port != "3001" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.JWTExpiry != 720*time.Hour {
		t.Errorf("JWTExpiry = %v", cfg.JWTExpiry)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("APP_ENV=development misclassified")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("MODEL_NAME", "test-model")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v", cfg.JWTExpiry)
	}
	if cfg.DBDriver != "pgx" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.ModelName != "test-model" {
		t.Errorf("ModelName = %q", cfg.ModelName)
	}
}

func TestEnvDurationInvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")
	if got := envDuration("SOME_DURATION", time.Minute); got != time.Minute {
		t.Errorf("envDuration = %v, want 1m fallback", got)
	}
}
