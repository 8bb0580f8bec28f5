package repository

import (
	"context"

	"carcare/internal/domain/entity"
)

// ServiceRepository defines the interface for scheduled services stored under vehicles.
type ServiceRepository interface {
	// FindByID retrieves a scheduled service of a vehicle.
	FindByID(ctx context.Context, userID, vehicleID, id string) (*entity.Service, error)
	// FindByVehicle retrieves a vehicle's scheduled services ordered by due date.
	FindByVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.Service, error)
	// Create stores a new scheduled service.
	Create(ctx context.Context, service *entity.Service) error
	// CompleteWithHistory writes the history entry and then removes the service.
	CompleteWithHistory(ctx context.Context, service *entity.Service, entry *entity.History) error
	// Delete deletes a scheduled service.
	Delete(ctx context.Context, userID, vehicleID, id string) error
	// DeleteByVehicle deletes every scheduled service of a vehicle.
	DeleteByVehicle(ctx context.Context, userID, vehicleID string) error
	// DeleteByUserID deletes every scheduled service of a user.
	DeleteByUserID(ctx context.Context, userID string) error
}
