package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/ctxutil"
	"github.com/mathmaster/backend/internal/metrics"
	"github.com/mathmaster/backend/internal/models"
	"github.com/mathmaster/backend/internal/observability"
)

// LoginByContact looks a user up by the contact field, then by phone. The
// store's equality filters cannot express OR across fields, so the phone
// check is a second sequential query, only issued when the first finds
// nothing.
func (f *Facade) LoginByContact(ctx context.Context, identifier string) AuthResult {
	users, err := f.collection(usersCollection, "login")
	if err != nil {
		return AuthResult{Status: AuthFailed, Message: err.Error()}
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	u, err := findUser(ctx, users, bson.M{"contact": identifier})
	if err == nil && u == nil {
		u, err = findUser(ctx, users, bson.M{"phone": identifier})
	}
	if err != nil {
		f.logger(ctx).Error("login lookup failed", zap.Error(err))
		observability.CaptureErr(err)
		storeErr(usersCollection)
		metrics.AuthAttempts.WithLabelValues("login", "failed").Inc()
		return AuthResult{Status: AuthFailed, Message: err.Error()}
	}
	if u == nil {
		metrics.AuthAttempts.WithLabelValues("login", "new_user").Inc()
		return AuthResult{Status: AuthNewUser, Identifier: identifier}
	}

	f.cacheUser(ctx, u)
	metrics.AuthAttempts.WithLabelValues("login", "ok").Inc()
	return AuthResult{Success: true, Status: AuthOK, User: u}
}

// Register creates a user with defaults (student role, no payments, createdAt
// now) under the caller-supplied fields; caller fields win on conflict. A
// user with the same contact must not already exist; checked here, the store
// does not enforce it.
func (f *Facade) Register(ctx context.Context, userData map[string]any) AuthResult {
	users, err := f.collection(usersCollection, "register")
	if err != nil {
		return AuthResult{Status: AuthFailed, Message: err.Error()}
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	contact, _ := userData["contact"].(string)
	existing, err := findUser(ctx, users, bson.M{"contact": contact})
	if err != nil {
		f.logger(ctx).Error("register lookup failed", zap.Error(err))
		observability.CaptureErr(err)
		storeErr(usersCollection)
		return AuthResult{Status: AuthFailed, Message: err.Error()}
	}
	if existing != nil {
		metrics.AuthAttempts.WithLabelValues("register", "duplicate").Inc()
		return AuthResult{Status: AuthFailed, Message: "User already registered!"}
	}

	doc := bson.M{
		"role":      string(models.Student),
		"payments":  bson.A{},
		"createdAt": f.now().UTC(),
	}
	for k, v := range userData {
		doc[k] = v
	}

	res, err := users.InsertOne(ctx, doc)
	if err != nil {
		f.logger(ctx).Error("register insert failed", zap.Error(err))
		observability.CaptureErr(err)
		storeErr(usersCollection)
		return AuthResult{Status: AuthFailed, Message: err.Error()}
	}

	u, err := decodeInserted(doc, res.InsertedID)
	if err != nil {
		return AuthResult{Status: AuthFailed, Message: err.Error()}
	}

	f.cacheUser(ctx, u)
	metrics.AuthAttempts.WithLabelValues("register", "ok").Inc()
	return AuthResult{Success: true, Status: AuthOK, User: u}
}

// AllStudents returns every user with the student role. Listing is
// best-effort: failures log and come back as an empty roster.
func (f *Facade) AllStudents(ctx context.Context) []models.User {
	users, err := f.collection(usersCollection, "all_students")
	if err != nil {
		return nil
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	cur, err := users.Find(ctx, bson.M{"role": string(models.Student)})
	if err != nil {
		f.logger(ctx).Error("student roster query failed", zap.Error(err))
		storeErr(usersCollection)
		return nil
	}
	var students []models.User
	if err := cur.All(ctx, &students); err != nil {
		f.logger(ctx).Error("student roster decode failed", zap.Error(err))
		return nil
	}
	return students
}

// RemoveUser deletes the user record. Deleting an id that no longer exists
// still succeeds, matching the store's delete semantics.
func (f *Facade) RemoveUser(ctx context.Context, userID string) OpResult {
	users, err := f.collection(usersCollection, "remove_user")
	if err != nil {
		return opFail(err.Error())
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return opFail(err.Error())
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	if _, err := users.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		f.logger(ctx).Error("user delete failed", zap.String("id", userID), zap.Error(err))
		storeErr(usersCollection)
		return opFail(err.Error())
	}
	return opOK()
}

func findUser(ctx context.Context, c *mongo.Collection, filter bson.M) (*models.User, error) {
	var u models.User
	err := c.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// decodeInserted shapes the inserted document plus its store-assigned id into
// a User without a second round trip.
func decodeInserted(doc bson.M, insertedID any) (*models.User, error) {
	oid, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("db: unexpected inserted id type")
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := bson.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	u.ID = oid
	return &u, nil
}

// cacheUser mirrors a freshly authenticated user into the local slot. A cache
// write failure does not fail the login, it only costs stay-logged-in.
func (f *Facade) cacheUser(ctx context.Context, u *models.User) {
	if f.sessions == nil {
		return
	}
	if err := f.sessions.Set(ctx, u); err != nil {
		f.logger(ctx).Warn("session cache write failed", zap.Error(err))
	}
}
