package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/app"
	"github.com/mathmaster/backend/internal/config"
	"github.com/mathmaster/backend/internal/db"
	"github.com/mathmaster/backend/internal/jobs"
	"github.com/mathmaster/backend/internal/logging"
	"github.com/mathmaster/backend/internal/observability"
	"github.com/mathmaster/backend/internal/session"
)

const release = "mathmaster-backend@dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Closer()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		lg.Base.Warn("sentry init failed", zap.Error(err))
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	mdb, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		// the facade stays constructible; every store operation will fail
		// fast until the store comes back and the process restarts
		lg.Base.Warn("document store unreachable", zap.Error(err))
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Disconnect(dctx, mdb)
	}()

	var sessions session.Store
	switch cfg.SessionBackend {
	case "redis":
		st := session.NewRedis(cfg.RedisAddr)
		defer st.Close()
		sessions = st
	case "memory":
		sessions = session.NewMemory()
	default:
		st, err := session.OpenSQLite(cfg.SessionPath)
		if err != nil {
			lg.Base.Fatal("session store open failed", zap.String("path", cfg.SessionPath), zap.Error(err))
		}
		defer st.Close()
		sessions = st
	}

	facade := db.New(mdb, sessions, lg.Named("db"))

	app.StartHTTP(ctx, cfg.HTTPAddr, mdb)

	runner := jobs.New(ctx)
	jobs.StartUnpaidScan(runner, facade, lg.Named("jobs"), cfg.Location, time.Hour)
	jobs.StartStorePing(runner, mdb, lg.Named("jobs"), time.Minute)

	lg.Base.Info("backend up",
		zap.String("http", cfg.HTTPAddr),
		zap.String("env", cfg.Env),
		zap.String("session_backend", cfg.SessionBackend))

	<-ctx.Done()
	lg.Base.Info("shutting down")
}
