package db_test

import (
	"testing"
	"time"

	"github.com/mathmaster/backend/internal/db"
	"github.com/mathmaster/backend/internal/models"
)

func TestCheckPaymentStatus(t *testing.T) {
	u := &models.User{Payments: []string{"2024-01"}}

	if !db.CheckPaymentStatus(u, "2024-01") {
		t.Error("paid month reported as unpaid")
	}
	if db.CheckPaymentStatus(u, "2024-02") {
		t.Error("unpaid month reported as paid")
	}
	if db.CheckPaymentStatus(nil, "2024-01") {
		t.Error("nil user reported as paid")
	}
	if db.CheckPaymentStatus(&models.User{}, "2024-01") {
		t.Error("user without payments reported as paid")
	}
}

func TestMonthKey(t *testing.T) {
	got := db.MonthKey(time.Date(2024, time.September, 17, 10, 0, 0, 0, time.UTC))
	if got != "2024-09" {
		t.Fatalf("MonthKey = %q, want 2024-09", got)
	}
}
