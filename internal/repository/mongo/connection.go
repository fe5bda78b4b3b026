package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connection holds the process-wide client and the application database.
type Connection struct {
	client           *mongo.Client
	db               *mongo.Database
	operationTimeout time.Duration
}

// ConnectionParams describes how to reach the database.
type ConnectionParams struct {
	URI              string
	Database         string
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
}

// NewConnection connects to MongoDB using the Stable API v1 and pings the
// deployment before returning.
func NewConnection(ctx context.Context, params ConnectionParams) (*Connection, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(params.URI).
		SetServerAPIOptions(serverAPI)

	connectCtx, cancel := context.WithTimeout(ctx, params.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	conn := &Connection{
		client:           client,
		db:               client.Database(params.Database),
		operationTimeout: params.OperationTimeout,
	}

	if err := conn.Ping(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return conn, nil
}

// Collection returns a handle for the named collection.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping runs the ping command against the admin database.
func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("mongo client is nil")
	}
	return c.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Close disconnects the client, waiting for in-flight operations until ctx
// expires.
func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// withTimeout bounds a single database call.
func (c *Connection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.operationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.operationTimeout)
}
