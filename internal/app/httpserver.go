package app

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mathmaster/backend/internal/metrics"
)

type HTTPServer struct {
	srv *http.Server
}

// StartHTTP serves the ops endpoints: /healthz pings the document store,
// /metrics exposes prometheus. Shuts down when ctx is cancelled.
func StartHTTP(ctx context.Context, addr string, mdb *mongo.Database) *HTTPServer {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if mdb == nil {
			http.Error(w, "store not configured", http.StatusServiceUnavailable)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if err := mdb.Client().Ping(ctx, readpref.Primary()); err != nil {
			http.Error(w, "store not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		metrics.ObserveStorePing(time.Since(t0))
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe()
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	return &HTTPServer{srv: srv}
}
