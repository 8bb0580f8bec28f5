package service

import (
	"context"

	"carcare/internal/domain/entity"
)

// HistoryService defines the interface for reading completed maintenance.
type HistoryService interface {
	// ListForUser returns all of the user's history, newest first.
	ListForUser(ctx context.Context, userID string) ([]*entity.History, error)
	// ListForVehicle returns one vehicle's history, newest first.
	ListForVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.History, error)
}
