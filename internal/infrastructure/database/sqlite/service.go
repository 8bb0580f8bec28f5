package sqlite

import (
	"context"
	"errors"
	"fmt"

	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new instance of ServiceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// FindByID retrieves a scheduled service by its ID.
func (r *serviceRepository) FindByID(ctx context.Context, userID, vehicleID, id string) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND vehicle_id = ?", id, userID, vehicleID).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service with ID %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find service by id %s: %w", id, err)
	}
	return &service, nil
}

// FindByVehicle retrieves the scheduled services of a vehicle ordered by due date.
func (r *serviceRepository) FindByVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.Service, error) {
	var services []*entity.Service
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Order("due_date asc").
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find services for vehicle %s: %w", vehicleID, err)
	}
	return services, nil
}

// Create creates a new scheduled service.
func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	if err := r.db.WithContext(ctx).Create(serviceRow(service)).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create service for vehicle %s: %w", service.VehicleID, err)
	}
	return nil
}

// CompleteWithHistory appends the history entry and removes the service in one transaction.
func (r *serviceRepository) CompleteWithHistory(ctx context.Context, service *entity.Service, entry *entity.History) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(historyRow(entry)).Error; err != nil {
			return fmt.Errorf("🔴 ERROR: failed to append history for service %s: %w", service.ID, err)
		}
		result := tx.Where("id = ? AND user_id = ? AND vehicle_id = ?", service.ID, service.UserID, service.VehicleID).
			Delete(&entity.Service{})
		if result.Error != nil {
			return fmt.Errorf("🔴 ERROR: failed to delete completed service %s: %w", service.ID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("service with ID %s: %w", service.ID, repository.ErrNotFound)
		}
		return nil
	})
}

// Delete deletes a scheduled service.
func (r *serviceRepository) Delete(ctx context.Context, userID, vehicleID, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND vehicle_id = ?", id, userID, vehicleID).
		Delete(&entity.Service{}).Error
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete service %s: %w", id, err)
	}
	return nil
}

// DeleteByVehicle deletes every scheduled service of a vehicle.
func (r *serviceRepository) DeleteByVehicle(ctx context.Context, userID, vehicleID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Delete(&entity.Service{}).Error
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete services for vehicle %s: %w", vehicleID, err)
	}
	return nil
}

// DeleteByUserID deletes every scheduled service of a user.
func (r *serviceRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Service{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete services for user %s: %w", userID, err)
	}
	return nil
}
