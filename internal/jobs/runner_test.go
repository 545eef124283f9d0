package jobs_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mathmaster/backend/internal/jobs"
)

func TestRunner_EveryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := jobs.New(ctx)

	var runs atomic.Int32
	r.Every(5*time.Millisecond, "tick", func(context.Context) error {
		runs.Add(1)
		return nil
	})

	time.Sleep(60 * time.Millisecond)
	cancel()
	if runs.Load() == 0 {
		t.Fatal("job never ran")
	}

	time.Sleep(20 * time.Millisecond)
	after := runs.Load()
	time.Sleep(40 * time.Millisecond)
	if runs.Load() != after {
		t.Fatalf("job kept running after cancel: %d -> %d", after, runs.Load())
	}
}

func TestRunner_PanicDoesNotKillSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := jobs.New(ctx)

	var runs atomic.Int32
	r.Every(5*time.Millisecond, "flaky", func(context.Context) error {
		runs.Add(1)
		panic("boom")
	})

	time.Sleep(60 * time.Millisecond)
	if runs.Load() < 2 {
		t.Fatalf("schedule died after the first panic: %d runs", runs.Load())
	}
}
