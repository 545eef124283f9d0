package ctxutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/mathmaster/backend/internal/ctxutil"
)

func TestOpRoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := ctxutil.Op(ctx); ok {
		t.Fatal("op on bare context")
	}
	ctx = ctxutil.WithOp(ctx, "login")
	if op, ok := ctxutil.Op(ctx); !ok || op != "login" {
		t.Fatalf("op = %q, %v", op, ok)
	}
}

func TestWithStoreTimeout_KeepsTighterParentDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ctx, cancel2 := ctxutil.WithStoreTimeout(parent)
	defer cancel2()

	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("no deadline")
	}
	if time.Until(dl) > 100*time.Millisecond {
		t.Fatalf("deadline loosened past the parent: %v", time.Until(dl))
	}
}

func TestWithStoreTimeout_Default(t *testing.T) {
	ctx, cancel := ctxutil.WithStoreTimeout(context.Background())
	defer cancel()

	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("no deadline")
	}
	if remain := time.Until(dl); remain > ctxutil.DefaultStoreTimeout {
		t.Fatalf("deadline beyond default: %v", remain)
	}
}
