package ctxutil

import (
	"context"
	"time"
)

// private key type to avoid collisions
type key int

const keyOpName key = iota

// WithOp attaches an operation name for logs.
func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOpName, name)
}

func Op(ctx context.Context) (string, bool) {
	v := ctx.Value(keyOpName)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// DefaultStoreTimeout bounds a single round trip to the hosted store.
var DefaultStoreTimeout = 5 * time.Second

// WithStoreTimeout caps ctx at the default store timeout, keeping a tighter
// parent deadline when one is already set.
func WithStoreTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		if remain := time.Until(dl); remain < DefaultStoreTimeout {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, DefaultStoreTimeout)
}
