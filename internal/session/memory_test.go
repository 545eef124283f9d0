package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mathmaster/backend/internal/models"
	"github.com/mathmaster/backend/internal/session"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := session.NewMemory()

	if _, err := st.Get(ctx); !errors.Is(err, session.ErrEmpty) {
		t.Fatalf("empty slot: %v", err)
	}
	if err := st.Set(ctx, &models.User{Contact: "alina@example.com"}); err != nil {
		t.Fatal(err)
	}
	got, err := st.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Contact != "alina@example.com" {
		t.Fatalf("round trip: %+v", got)
	}
	if err := st.Delete(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Get(ctx); !errors.Is(err, session.ErrEmpty) {
		t.Fatalf("after delete: %v", err)
	}
}

// Mutating the returned user must not leak back into the slot: every Get
// decodes a fresh copy.
func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	st := session.NewMemory()

	if err := st.Set(ctx, &models.User{Contact: "alina@example.com", Payments: []string{"2024-09"}}); err != nil {
		t.Fatal(err)
	}
	first, _ := st.Get(ctx)
	first.Payments[0] = "mutated"

	second, _ := st.Get(ctx)
	if second.Payments[0] != "2024-09" {
		t.Fatalf("caller mutation leaked into the slot: %+v", second)
	}
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	st := session.NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Set(ctx, &models.User{Contact: "race@example.com"})
			_, _ = st.Get(ctx)
			_ = st.Delete(ctx)
		}()
	}
	wg.Wait()
}
