package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mathmaster/backend/internal/models"
	"github.com/mathmaster/backend/internal/session"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	st, err := session.OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	if _, err := st.Get(ctx); !errors.Is(err, session.ErrEmpty) {
		t.Fatalf("empty slot: %v", err)
	}

	u := &models.User{
		ID:       primitive.NewObjectID(),
		Contact:  "alina@example.com",
		Name:     "Alina",
		Role:     models.Student,
		Payments: []string{"2024-09"},
	}
	if err := st.Set(ctx, u); err != nil {
		t.Fatal(err)
	}

	got, err := st.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID || got.Contact != u.Contact || len(got.Payments) != 1 {
		t.Fatalf("round trip: %+v", got)
	}

	// second Set overwrites the single slot
	if err := st.Set(ctx, &models.User{Contact: "boris@example.com"}); err != nil {
		t.Fatal(err)
	}
	got, err = st.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Contact != "boris@example.com" {
		t.Fatalf("overwrite: %+v", got)
	}

	if err := st.Delete(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Get(ctx); !errors.Is(err, session.ErrEmpty) {
		t.Fatalf("after delete: %v", err)
	}
	// delete on an empty slot is a no-op
	if err := st.Delete(ctx); err != nil {
		t.Fatal(err)
	}
}

// The point of the sqlite backend is surviving a restart.
func TestSQLiteStore_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	st, err := session.OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Set(ctx, &models.User{Contact: "alina@example.com"}); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st, err = session.OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	got, err := st.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Contact != "alina@example.com" {
		t.Fatalf("after reopen: %+v", got)
	}
}
