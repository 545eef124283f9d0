package session

import (
	"context"
	"errors"

	"github.com/mathmaster/backend/internal/models"
)

// Key is the single slot every backend writes the cached user under.
const Key = "mathmaster_user_session"

// ErrEmpty is returned by Get when nothing is cached.
var ErrEmpty = errors.New("session: empty")

// Store is a single-slot persistent cache for the last authenticated user.
// It is a cache, not the source of truth: the facade overwrites it on every
// successful login, registration and refresh, and reads it back only for the
// stay-logged-in path.
type Store interface {
	Get(ctx context.Context) (*models.User, error)
	Set(ctx context.Context, u *models.User) error
	Delete(ctx context.Context) error
}
