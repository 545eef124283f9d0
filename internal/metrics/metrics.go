package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionReads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mathmaster", Name: "session_reads_total", Help: "Local session slot reads",
	}, []string{"result"})
	AuthAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mathmaster", Name: "auth_attempts_total", Help: "Login and registration attempts",
	}, []string{"op", "outcome"})
	StoreQueries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mathmaster", Name: "store_queries_total", Help: "Document store operations",
	}, []string{"collection", "op"})
	StoreErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mathmaster", Name: "store_errors_total", Help: "Document store operation failures",
	}, []string{"collection"})
	StorePing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mathmaster", Name: "store_ping_seconds", Help: "Document store ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(SessionReads, AuthAttempts, StoreQueries, StoreErrors, StorePing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveStorePing(d time.Duration) { StorePing.Observe(d.Seconds()) }
