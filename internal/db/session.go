package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/ctxutil"
	"github.com/mathmaster/backend/internal/metrics"
	"github.com/mathmaster/backend/internal/models"
	"github.com/mathmaster/backend/internal/session"
)

// CurrentUser reads the local session slot only; it never touches the remote
// store. Nil means nobody is logged in on this device.
func (f *Facade) CurrentUser(ctx context.Context) *models.User {
	if f.sessions == nil {
		return nil
	}
	u, err := f.sessions.Get(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrEmpty) {
			f.logger(ctx).Warn("session cache read failed", zap.Error(err))
		}
		metrics.SessionReads.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.SessionReads.WithLabelValues("hit").Inc()
	return u
}

// RefreshSession re-fetches the cached user from the store and updates the
// slot. When the fetch fails (offline, store down) the last-known copy wins
// and the cache is left untouched: availability over freshness.
func (f *Facade) RefreshSession(ctx context.Context) *models.User {
	cached := f.CurrentUser(ctx)
	if cached == nil {
		return nil
	}

	users, err := f.collection(usersCollection, "refresh_session")
	if err != nil {
		return cached
	}
	qctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	fresh, err := findUser(qctx, users, bson.M{"_id": cached.ID})
	if err != nil {
		f.logger(ctx).Warn("session refresh failed, serving cached copy", zap.Error(err))
		storeErr(usersCollection)
		return cached
	}
	if fresh == nil {
		// record gone remotely; keep serving the stale copy until logout
		return cached
	}

	f.cacheUser(ctx, fresh)
	return fresh
}

// Logout clears the session slot. The caller is responsible for routing back
// to the entry view.
func (f *Facade) Logout(ctx context.Context) error {
	if f.sessions == nil {
		return nil
	}
	return f.sessions.Delete(ctx)
}
