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

type serviceRepository struct {
	services *mongo.Collection
	history  *mongo.Collection
}

// NewServiceRepository creates a ServiceRepository backed by MongoDB.
func NewServiceRepository(db *mongo.Database) repository.ServiceRepository {
	return &serviceRepository{
		services: db.Collection(ServicesCollection),
		history:  db.Collection(HistoryCollection),
	}
}

func (r *serviceRepository) FindByID(ctx context.Context, userID, vehicleID, id string) (*entity.Service, error) {
	var service entity.Service
	filter := bson.M{"_id": id, "user_id": userID, "vehicle_id": vehicleID}
	if err := r.services.FindOne(ctx, filter).Decode(&service); err != nil {
		return nil, wrapFindOne(err, "service", id)
	}
	return &service, nil
}

func (r *serviceRepository) FindByVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{"user_id": userID, "vehicle_id": vehicleID}, opts)
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find services for vehicle %s: %w", vehicleID, err)
	}
	defer cursor.Close(ctx)

	var services []*entity.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to decode services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	if _, err := r.services.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create service for vehicle %s: %w", service.VehicleID, err)
	}
	return nil
}

// CompleteWithHistory writes the history entry first and removes the service
// afterwards, so a failed delete leaves a duplicate-safe scheduled service
// rather than a lost completion.
func (r *serviceRepository) CompleteWithHistory(ctx context.Context, service *entity.Service, entry *entity.History) error {
	if _, err := r.history.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to append history for service %s: %w", service.ID, err)
	}
	filter := bson.M{"_id": service.ID, "user_id": service.UserID, "vehicle_id": service.VehicleID}
	result, err := r.services.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete completed service %s: %w", service.ID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with ID %s: %w", service.ID, repository.ErrNotFound)
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, userID, vehicleID, id string) error {
	if _, err := r.services.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID, "vehicle_id": vehicleID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete service %s: %w", id, err)
	}
	return nil
}

func (r *serviceRepository) DeleteByVehicle(ctx context.Context, userID, vehicleID string) error {
	if _, err := r.services.DeleteMany(ctx, bson.M{"user_id": userID, "vehicle_id": vehicleID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete services for vehicle %s: %w", vehicleID, err)
	}
	return nil
}

func (r *serviceRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.services.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete services for user %s: %w", userID, err)
	}
	return nil
}
