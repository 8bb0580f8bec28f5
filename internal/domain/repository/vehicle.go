package repository

import (
	"context"

	"carcare/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle data operations.
type VehicleRepository interface {
	// FindByID retrieves a vehicle owned by the user.
	FindByID(ctx context.Context, userID, id string) (*entity.Vehicle, error)
	// FindByUserID retrieves a user's vehicles, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Vehicle, error)
	// Create stores a new vehicle.
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	// Delete deletes a vehicle by its ID.
	Delete(ctx context.Context, userID, id string) error
	// DeleteByUserID deletes all vehicles for a user.
	DeleteByUserID(ctx context.Context, userID string) error
}
