package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/ctxutil"
	"github.com/mathmaster/backend/internal/metrics"
	"github.com/mathmaster/backend/internal/session"
)

// Collection names in the hosted store.
const (
	usersCollection    = "users"
	contentCollection  = "content"
	marksCollection    = "marks"
	settingsCollection = "settings"
)

// settingsDocID is the fixed id of the single global settings document.
const settingsDocID = "global"

// ErrStoreUnavailable is returned when the facade was built without a store
// handle. The facade stays constructible so the app can come up and show a
// meaningful error instead of crashing.
var ErrStoreUnavailable = errors.New("db: store not configured")

// Facade wraps the hosted document store and the local session slot behind
// the operations the app actually needs: auth, content, marks, payments and
// settings. Every remote call is a single attempt; failures come back as
// data, never panics.
type Facade struct {
	mdb      *mongo.Database
	sessions session.Store
	log      *zap.Logger
	now      func() time.Time
}

func New(mdb *mongo.Database, sessions session.Store, log *zap.Logger) *Facade {
	if log == nil {
		log = zap.NewNop()
	}
	return &Facade{
		mdb:      mdb,
		sessions: sessions,
		log:      log,
		now:      time.Now,
	}
}

// collection is the single guarded accessor for the remote store; every
// operation goes through it so a missing handle fails the same way everywhere.
// The op label feeds the per-collection query counter.
func (f *Facade) collection(name, op string) (*mongo.Collection, error) {
	if f.mdb == nil {
		return nil, ErrStoreUnavailable
	}
	metrics.StoreQueries.WithLabelValues(name, op).Inc()
	return f.mdb.Collection(name), nil
}

// storeErr counts a failed store operation for /metrics. Logging stays at the
// call site where the operation context is.
func storeErr(name string) { metrics.StoreErrors.WithLabelValues(name).Inc() }

// logger tags the facade logger with the operation name when the caller put
// one on the context.
func (f *Facade) logger(ctx context.Context) *zap.Logger {
	if op, ok := ctxutil.Op(ctx); ok {
		return f.log.With(zap.String("op", op))
	}
	return f.log
}
