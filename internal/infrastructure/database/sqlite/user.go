package sqlite

import (
	"context"
	"errors"
	"fmt"

	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUserID retrieves a user by their LINE User ID.
func (r *userRepository) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", userID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find user by user_id %s: %w", userID, err)
	}
	return &user, nil
}

// Create creates a new user profile.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(userRow(user)).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create user %s: %w", user.ID, err)
	}
	return nil
}

// Update updates an existing user profile.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	// Select("*") writes every column, including zero values.
	result := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("user_id = ?", user.ID).
		Select("*").
		Updates(userRow(user))
	if result.Error != nil {
		return fmt.Errorf("🔴 ERROR: failed to update user %s: %w", user.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s: %w", user.ID, repository.ErrNotFound)
	}
	return nil
}

// Delete deletes a user profile by their LINE User ID.
func (r *userRepository) Delete(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.User{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete user %s: %w", userID, err)
	}
	return nil
}
