package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens the hosted store and verifies it answers before handing the
// database out. Pooling and retries stay inside the driver.
func Connect(ctx context.Context, uri, name string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client.Database(name), nil
}

// Disconnect closes the client behind a database handle.
func Disconnect(ctx context.Context, mdb *mongo.Database) error {
	if mdb == nil {
		return nil
	}
	return mdb.Client().Disconnect(ctx)
}
