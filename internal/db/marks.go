package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/ctxutil"
	"github.com/mathmaster/backend/internal/models"
	"github.com/mathmaster/backend/internal/observability"
)

// AddMark stamps the date and records the mark. On failure only the flag is
// reported, no message; callers show a generic error for marks.
func (f *Facade) AddMark(ctx context.Context, mark models.Mark) OpResult {
	col, err := f.collection(marksCollection, "add_mark")
	if err != nil {
		return OpResult{Success: false}
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	mark.Date = f.now().UTC()
	if _, err := col.InsertOne(ctx, mark); err != nil {
		f.logger(ctx).Error("mark insert failed", zap.String("student", mark.StudentID), zap.Error(err))
		observability.CaptureErr(err)
		storeErr(marksCollection)
		return OpResult{Success: false}
	}
	return opOK()
}

// StudentMarks lists every mark recorded for one student; empty on failure.
func (f *Facade) StudentMarks(ctx context.Context, studentID string) []models.Mark {
	col, err := f.collection(marksCollection, "student_marks")
	if err != nil {
		return nil
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	cur, err := col.Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		f.logger(ctx).Error("marks query failed", zap.String("student", studentID), zap.Error(err))
		storeErr(marksCollection)
		return nil
	}
	var marks []models.Mark
	if err := cur.All(ctx, &marks); err != nil {
		f.logger(ctx).Error("marks decode failed", zap.String("student", studentID), zap.Error(err))
		return nil
	}
	return marks
}
