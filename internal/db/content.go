package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mathmaster/backend/internal/ctxutil"
	"github.com/mathmaster/backend/internal/models"
	"github.com/mathmaster/backend/internal/observability"
)

var contentByDateDesc = options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

// Content lists study material for one grade, newest first. Listing is
// best-effort: any failure logs and returns an empty list.
func (f *Facade) Content(ctx context.Context, grade string) []models.ContentItem {
	col, err := f.collection(contentCollection, "content")
	if err != nil {
		return nil
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	items, err := fetchContent(ctx, col, bson.M{"grade": grade}, contentByDateDesc)
	if err != nil {
		f.logger(ctx).Error("content query failed", zap.String("grade", grade), zap.Error(err))
		storeErr(contentCollection)
		return nil
	}
	return items
}

// AllContent lists everything, newest first. The hosted store may refuse the
// ordered query when the supporting index is missing; in that case the full
// unordered set is better than nothing.
func (f *Facade) AllContent(ctx context.Context) []models.ContentItem {
	col, err := f.collection(contentCollection, "all_content")
	if err != nil {
		return nil
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	items, err := fetchContent(ctx, col, bson.M{}, contentByDateDesc)
	if err == nil {
		return items
	}
	f.logger(ctx).Warn("ordered content fetch failed, falling back to unordered", zap.Error(err))

	items, err = fetchContent(ctx, col, bson.M{}, nil)
	if err != nil {
		f.logger(ctx).Error("content fetch failed", zap.Error(err))
		storeErr(contentCollection)
		return nil
	}
	return items
}

// AddContent stamps the creation date and inserts the item.
func (f *Facade) AddContent(ctx context.Context, item models.ContentItem) OpResult {
	col, err := f.collection(contentCollection, "add_content")
	if err != nil {
		return opFail(err.Error())
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	item.Date = f.now().UTC()
	if _, err := col.InsertOne(ctx, item); err != nil {
		f.logger(ctx).Error("content insert failed", zap.Error(err))
		observability.CaptureErr(err)
		storeErr(contentCollection)
		return opFail(err.Error())
	}
	return opOK()
}

// DeleteContent removes one item by id; deleting an already-gone id succeeds.
func (f *Facade) DeleteContent(ctx context.Context, id string) OpResult {
	col, err := f.collection(contentCollection, "delete_content")
	if err != nil {
		return opFail(err.Error())
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return opFail(err.Error())
	}
	ctx, cancel := ctxutil.WithStoreTimeout(ctx)
	defer cancel()

	if _, err := col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		f.logger(ctx).Error("content delete failed", zap.String("id", id), zap.Error(err))
		storeErr(contentCollection)
		return opFail(err.Error())
	}
	return opOK()
}

func fetchContent(ctx context.Context, col *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]models.ContentItem, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = col.Find(ctx, filter, opts)
	} else {
		cur, err = col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	var items []models.ContentItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
