package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"memberdesk/internal/config"
)

const (
	connectTimeout = 10 * time.Second
	maxPoolSize    = 10
)

const (
	MembersCollection = "members"
	TasksCollection   = "tasks"
)

// Connect opens the process-wide client, verifies connectivity and ensures
// the collection indexes exist. The returned database handle owns the
// connection pool; callers must Disconnect the client on shutdown.
func Connect(ctx context.Context, conf *config.Config) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(conf.MongoURI).
		SetMaxPoolSize(maxPoolSize).
		SetServerSelectionTimeout(5 * time.Second)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	database := client.Database(conf.MongoDatabase)
	if err := ensureIndexes(connectCtx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return database, nil
}

// ensureIndexes creates the unique index backing the member email
// uniqueness constraint.
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(MembersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
