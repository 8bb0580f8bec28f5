package service

import (
	"context"

	"carcare/internal/application/dto"
	"carcare/internal/domain/entity"
)

// VehicleService defines the interface for managing a user's garage.
type VehicleService interface {
	// Register validates and stores a new vehicle.
	Register(ctx context.Context, req dto.RegisterVehicleRequest) (*entity.Vehicle, error)
	// List returns the user's vehicles, newest first.
	List(ctx context.Context, userID string) ([]*entity.Vehicle, error)
	// Get retrieves a vehicle owned by the user.
	Get(ctx context.Context, userID, vehicleID string) (*entity.Vehicle, error)
	// Delete removes a vehicle together with its scheduled services.
	Delete(ctx context.Context, userID, vehicleID string) error
}
