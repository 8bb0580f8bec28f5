package repository

import (
	"context"

	"carcare/internal/domain/entity"
)

// HistoryRepository defines the interface for history entries.
type HistoryRepository interface {
	// Create appends a history entry.
	Create(ctx context.Context, entry *entity.History) error
	// FindByUserID retrieves a user's history, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.History, error)
	// FindByVehicle retrieves the history of one vehicle, newest first.
	FindByVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.History, error)
	// DeleteByUserID deletes a user's history.
	DeleteByUserID(ctx context.Context, userID string) error
}
