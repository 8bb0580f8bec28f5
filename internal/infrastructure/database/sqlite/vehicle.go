package sqlite

import (
	"context"
	"errors"
	"fmt"

	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new instance of VehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// FindByID retrieves a vehicle by its ID.
func (r *vehicleRepository) FindByID(ctx context.Context, userID, id string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle with ID %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find vehicle by id %s: %w", id, err)
	}
	return &vehicle, nil
}

// FindByUserID retrieves all vehicles of a user, newest first.
func (r *vehicleRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find vehicles by user_id %s: %w", userID, err)
	}
	return vehicles, nil
}

// Create creates a new vehicle.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicleRow(vehicle)).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create vehicle for user %s: %w", vehicle.UserID, err)
	}
	return nil
}

// Delete deletes a vehicle by its ID.
func (r *vehicleRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Vehicle{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete vehicle %s: %w", id, err)
	}
	return nil
}

// DeleteByUserID deletes all vehicles for a specific user.
func (r *vehicleRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Vehicle{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete vehicles for user %s: %w", userID, err)
	}
	return nil
}
