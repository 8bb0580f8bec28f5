package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carcare/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per document kind. Every document carries user_id.
const (
	UsersCollection     = "users"
	VehiclesCollection  = "vehicles"
	ServicesCollection  = "services"
	RemindersCollection = "reminders"
	HistoryCollection   = "history"
)

// Connect connects to MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes used by the repository queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		RemindersCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "due_at", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		VehiclesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		ServicesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "vehicle_id", Value: 1}, {Key: "due_date", Value: 1}}},
		},
		HistoryCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "completed_at", Value: -1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// wrapFindOne maps mongo.ErrNoDocuments to repository.ErrNotFound.
func wrapFindOne(err error, kind, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s with ID %s: %w", kind, id, repository.ErrNotFound)
	}
	return fmt.Errorf("🔴 ERROR: failed to find %s by id %s: %w", kind, id, err)
}
