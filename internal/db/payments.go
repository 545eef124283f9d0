package db

import (
	"context"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/ctxutil"
	"github.com/mathmaster/backend/internal/models"
	"github.com/mathmaster/backend/internal/observability"
)

// MonthKey formats the billing token for a moment, e.g. "2024-09".
func MonthKey(t time.Time) string { return t.Format("2006-01") }

// AddPayment marks a month as paid for a student. Paying the same month twice
// is rejected, not silently accepted. The membership check and the write are
// two steps with no concurrency guard between them (accepted limitation for
// admin edits from two devices); $addToSet keeps the stored array
// duplicate-free even when the check races.
func (f *Facade) AddPayment(ctx context.Context, studentID, monthKey string) OpResult {
	users, err := f.collection(usersCollection, "add_payment")
	if err != nil {
		return opFail(err.Error())
	}
	oid, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return opFail("Student not found")
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	u, err := findUser(ctx, users, bson.M{"_id": oid})
	if err != nil {
		f.logger(ctx).Error("payment lookup failed", zap.String("student", studentID), zap.Error(err))
		observability.CaptureErr(err)
		storeErr(usersCollection)
		return opFail(err.Error())
	}
	if u == nil {
		return opFail("Student not found")
	}
	if slices.Contains(u.Payments, monthKey) {
		return opFail("Already paid")
	}

	_, err = users.UpdateByID(ctx, oid, bson.M{"$addToSet": bson.M{"payments": monthKey}})
	if err != nil {
		f.logger(ctx).Error("payment update failed", zap.String("student", studentID), zap.Error(err))
		observability.CaptureErr(err)
		storeErr(usersCollection)
		return opFail(err.Error())
	}
	return opOK()
}

// RemovePayment is the symmetric removal. A missing student and a month that
// was never paid report the same outcome.
func (f *Facade) RemovePayment(ctx context.Context, studentID, monthKey string) OpResult {
	users, err := f.collection(usersCollection, "remove_payment")
	if err != nil {
		return opFail(err.Error())
	}
	oid, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return opFail("Payment record not found")
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	u, err := findUser(ctx, users, bson.M{"_id": oid})
	if err != nil {
		f.logger(ctx).Error("payment lookup failed", zap.String("student", studentID), zap.Error(err))
		observability.CaptureErr(err)
		storeErr(usersCollection)
		return opFail(err.Error())
	}
	if u == nil || !slices.Contains(u.Payments, monthKey) {
		return opFail("Payment record not found")
	}

	_, err = users.UpdateByID(ctx, oid, bson.M{"$pull": bson.M{"payments": monthKey}})
	if err != nil {
		f.logger(ctx).Error("payment update failed", zap.String("student", studentID), zap.Error(err))
		observability.CaptureErr(err)
		storeErr(usersCollection)
		return opFail(err.Error())
	}
	return opOK()
}

// CheckPaymentStatus reports whether the month is paid, from data the caller
// already holds. Pure helper, no store round trip.
func CheckPaymentStatus(u *models.User, monthKey string) bool {
	if u == nil || u.Payments == nil {
		return false
	}
	return slices.Contains(u.Payments, monthKey)
}
