package jobs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/metrics"
)

// StartStorePing keeps the store latency histogram warm between health
// checks. Skipped entirely when the process came up without a store handle.
func StartStorePing(r *Runner, mdb *mongo.Database, log *zap.Logger, interval time.Duration) {
	if mdb == nil {
		return
	}
	r.Every(interval, "store_ping", func(ctx context.Context) error {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		t0 := time.Now()
		if err := mdb.Client().Ping(pctx, readpref.Primary()); err != nil {
			log.Warn("store ping failed", zap.Error(err))
			return err
		}
		metrics.ObserveStorePing(time.Since(t0))
		return nil
	})
}
