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

type vehicleRepository struct {
	collection *mongo.Collection
}

// NewVehicleRepository creates a VehicleRepository backed by MongoDB.
func NewVehicleRepository(db *mongo.Database) repository.VehicleRepository {
	return &vehicleRepository{collection: db.Collection(VehiclesCollection)}
}

func (r *vehicleRepository) FindByID(ctx context.Context, userID, id string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	if err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&vehicle); err != nil {
		return nil, wrapFindOne(err, "vehicle", id)
	}
	return &vehicle, nil
}

func (r *vehicleRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Vehicle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find vehicles by user_id %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var vehicles []*entity.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if _, err := r.collection.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create vehicle for user %s: %w", vehicle.UserID, err)
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete vehicle %s: %w", id, err)
	}
	return nil
}

func (r *vehicleRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete vehicles for user %s: %w", userID, err)
	}
	return nil
}
