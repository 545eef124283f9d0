package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/ctxutil"
	"github.com/mathmaster/backend/internal/db"
)

// StartUnpaidScan periodically counts students without a payment for the
// current month, so the ops dashboard shows the number without anyone opening
// the admin view. The billing month rolls over at midnight in loc, not UTC.
func StartUnpaidScan(r *Runner, facade *db.Facade, log *zap.Logger, loc *time.Location, interval time.Duration) {
	if loc == nil {
		loc = time.Local
	}
	r.Every(interval, "unpaid_scan", func(ctx context.Context) error {
		ctx = ctxutil.WithOp(ctx, "unpaid_scan")
		month := db.MonthKey(time.Now().In(loc))
		students := facade.AllStudents(ctx)
		unpaid := 0
		for i := range students {
			if !db.CheckPaymentStatus(&students[i], month) {
				unpaid++
			}
		}
		unpaidGauge.Set(float64(unpaid))
		log.Info("unpaid roster scan",
			zap.String("month", month),
			zap.Int("students", len(students)),
			zap.Int("unpaid", unpaid))
		return nil
	})
}
