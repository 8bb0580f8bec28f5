package sqlite

import (
	"context"
	"fmt"

	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new instance of HistoryRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

// Create appends a history entry.
func (r *historyRepository) Create(ctx context.Context, entry *entity.History) error {
	if err := r.db.WithContext(ctx).Create(historyRow(entry)).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create history for user %s: %w", entry.UserID, err)
	}
	return nil
}

// FindByUserID retrieves a user's history, newest first.
func (r *historyRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.History, error) {
	var entries []*entity.History
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("completed_at desc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find history by user_id %s: %w", userID, err)
	}
	return entries, nil
}

// FindByVehicle retrieves the history of one vehicle, newest first.
func (r *historyRepository) FindByVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.History, error) {
	var entries []*entity.History
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Order("completed_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find history for vehicle %s: %w", vehicleID, err)
	}
	return entries, nil
}

// DeleteByUserID deletes a user's history.
func (r *historyRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.History{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete history for user %s: %w", userID, err)
	}
	return nil
}
