package jobs

import (
	"context"
	"time"

	"github.com/mathmaster/backend/internal/observability"
)

type Job func(ctx context.Context) error

type Runner struct {
	ctx context.Context
}

func New(ctx context.Context) *Runner { return &Runner{ctx: ctx} }

// Every runs fn on a fixed interval until the runner's context is cancelled.
// A panicking job is reported and the schedule keeps going.
func (r *Runner) Every(interval time.Duration, name string, fn Job) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-r.ctx.Done():
				return
			case <-t.C:
				start := time.Now()
				func() {
					defer func() {
						if v := recover(); v != nil {
							observability.Recover(v)
							jobErrors.WithLabelValues(name).Inc()
						}
					}()
					if err := fn(r.ctx); err != nil {
						jobErrors.WithLabelValues(name).Inc()
					}
				}()
				jobRuns.WithLabelValues(name).Inc()
				jobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			}
		}
	}()
}
