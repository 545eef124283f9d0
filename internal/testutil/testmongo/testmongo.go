//go:build testutil
// +build testutil

package testmongo

import (
	"context"
	"fmt"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Handle struct {
	DB     *mongo.Database
	cancel func()
	stop   func(context.Context) error
}

func (h *Handle) Close() {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = h.DB.Client().Disconnect(ctx)
		cancel()
	}
	if h.stop != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.stop(ctx)
	}
	if h.cancel != nil {
		h.cancel()
	}
}

// Start brings up a throwaway mongod in a container and hands back a database
// scoped to this test run.
func Start(ctx context.Context) (*Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		return nil, err
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		cancel()
		return nil, err
	}
	port, err := c.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = c.Terminate(ctx)
		cancel()
		return nil, err
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = c.Terminate(ctx)
		cancel()
		return nil, err
	}
	if err := waitReady(ctx, client); err != nil {
		_ = c.Terminate(ctx)
		cancel()
		return nil, err
	}

	return &Handle{
		DB:     client.Database("mathmaster_test"),
		cancel: cancel,
		stop:   c.Terminate,
	}, nil
}

func waitReady(ctx context.Context, client *mongo.Client) error {
	dead := time.Now().Add(20 * time.Second)
	for time.Now().Before(dead) {
		if err := client.Ping(ctx, readpref.Primary()); err == nil {
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return fmt.Errorf("mongod did not become ready")
}
