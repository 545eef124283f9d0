package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/ctxutil"
	"github.com/mathmaster/backend/internal/models"
	"github.com/mathmaster/backend/internal/observability"
)

// Settings returns the fields of the single global settings document, empty
// when it does not exist yet or the store cannot be reached.
func (f *Facade) Settings(ctx context.Context) models.Settings {
	col, err := f.collection(settingsCollection, "settings")
	if err != nil {
		return models.Settings{}
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	var doc models.Settings
	err = col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Settings{}
	}
	if err != nil {
		f.logger(ctx).Error("settings query failed", zap.Error(err))
		storeErr(settingsCollection)
		return models.Settings{}
	}
	delete(doc, "_id")
	return doc
}

// UpdateSettings merges the given fields into the global document, creating
// it when absent. Fields not named stay as they are.
func (f *Facade) UpdateSettings(ctx context.Context, fields models.Settings) OpResult {
	col, err := f.collection(settingsCollection, "update_settings")
	if err != nil {
		return opFail(err.Error())
	}
	if len(fields) == 0 {
		return opOK()
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		return opOK()
	}
	_, err = col.UpdateByID(ctx, settingsDocID, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		f.logger(ctx).Error("settings update failed", zap.Error(err))
		observability.CaptureErr(err)
		storeErr(settingsCollection)
		return opFail(err.Error())
	}
	return opOK()
}
