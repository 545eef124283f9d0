package config_test

import (
	"testing"

	"github.com/mathmaster/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MongoDB != "mathmaster" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}
	if cfg.SessionBackend != "sqlite" {
		t.Errorf("SessionBackend = %q", cfg.SessionBackend)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "info" || cfg.Env != "dev" {
		t.Errorf("LogLevel=%q Env=%q", cfg.LogLevel, cfg.Env)
	}
	if cfg.Location == nil {
		t.Error("Location is nil")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "school")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("ENV", "prod")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MongoDB != "school" || cfg.SessionBackend != "redis" || cfg.RedisAddr != "cache:6379" {
		t.Fatalf("overrides lost: %+v", cfg)
	}
	if cfg.Env != "prod" {
		t.Errorf("Env = %q", cfg.Env)
	}
}

func TestLoad_BadSessionBackend(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("SESSION_BACKEND", "postgres")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
