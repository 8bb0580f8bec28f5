package mongo

import (
	"context"
	"fmt"

	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type historyRepository struct {
	collection *mongo.Collection
}

// NewHistoryRepository creates a HistoryRepository backed by MongoDB.
func NewHistoryRepository(db *mongo.Database) repository.HistoryRepository {
	return &historyRepository{collection: db.Collection(HistoryCollection)}
}

func (r *historyRepository) Create(ctx context.Context, entry *entity.History) error {
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create history for user %s: %w", entry.UserID, err)
	}
	return nil
}

func (r *historyRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.History, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *historyRepository) FindByVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.History, error) {
	return r.find(ctx, bson.M{"user_id": userID, "vehicle_id": vehicleID})
}

func (r *historyRepository) find(ctx context.Context, filter bson.M) ([]*entity.History, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to query history: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*entity.History
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to decode history: %w", err)
	}
	return entries, nil
}

func (r *historyRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete history for user %s: %w", userID, err)
	}
	return nil
}
