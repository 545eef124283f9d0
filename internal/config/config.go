package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	SessionBackend string // sqlite|redis|memory
	SessionPath    string // sqlite backend only
	RedisAddr      string // redis backend only
	Location       *time.Location
	HTTPAddr       string
	LogLevel       string
	Env            string // dev|prod
	SentryDSN      string
}

func Load() (*Config, error) {
	tz := getenv("TZ", "Europe/Moscow")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	backend := getenv("SESSION_BACKEND", "sqlite")
	switch backend {
	case "sqlite", "redis", "memory":
	default:
		return nil, fmt.Errorf("SESSION_BACKEND: unknown backend %q", backend)
	}

	cfg := &Config{
		MongoURI:       mustEnv("MONGO_URI"),
		MongoDB:        getenv("MONGO_DB", "mathmaster"),
		SessionBackend: backend,
		SessionPath:    getenv("SESSION_PATH", "./data/session.db"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		Location:       loc,
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		Env:            getenv("ENV", "dev"),
		SentryDSN:      os.Getenv("SENTRY_DSN"),
	}
	return cfg, nil
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("required env " + k + " is empty")
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
