package export_test

import (
	"testing"
	"time"

	"github.com/mathmaster/backend/internal/export"
	"github.com/mathmaster/backend/internal/models"
)

func TestNewRosterWorkbook(t *testing.T) {
	students := []models.User{
		{
			Name: "Alina", Contact: "alina@example.com", Phone: "+79990001122",
			Role: models.Student, Payments: []string{"2024-09", "2024-10"},
			CreatedAt: time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Name: "Boris", Contact: "boris@example.com",
			Role: models.Student, Payments: []string{"2024-10"},
			CreatedAt: time.Date(2024, time.October, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	months := []string{"2024-09", "2024-10", "2024-11"}

	w, err := export.NewRosterWorkbook(students, months)
	if err != nil {
		t.Fatal(err)
	}

	get := func(cell string) string {
		t.Helper()
		v, err := w.File.GetCellValue("Students", cell)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	if get("A1") != "Name" || get("E1") != "2024-09" || get("G1") != "2024-11" {
		t.Fatalf("header row: %q %q %q", get("A1"), get("E1"), get("G1"))
	}
	if get("A2") != "Alina" || get("D2") != "2024-09-01" {
		t.Fatalf("first row: %q %q", get("A2"), get("D2"))
	}
	// Alina paid 09+10, Boris only 10
	if get("E2") != "✓" || get("F2") != "✓" || get("G2") != "" {
		t.Fatalf("Alina payments: %q %q %q", get("E2"), get("F2"), get("G2"))
	}
	if get("E3") != "" || get("F3") != "✓" {
		t.Fatalf("Boris payments: %q %q", get("E3"), get("F3"))
	}
}

func TestMonthRange(t *testing.T) {
	got := export.MonthRange(time.Date(2024, time.November, 30, 23, 0, 0, 0, time.UTC), 4)
	want := []string{"2024-11", "2024-12", "2025-01", "2025-02"}
	if len(got) != len(want) {
		t.Fatalf("len = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MonthRange[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewRosterWorkbook_Empty(t *testing.T) {
	w, err := export.NewRosterWorkbook(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	v, err := w.File.GetCellValue("Students", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if v != "Name" {
		t.Fatalf("header on empty roster: %q", v)
	}
}
