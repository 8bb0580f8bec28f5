package repository

import (
	"context"

	"carcare/internal/domain/entity"
)

// UserRepository defines the interface for user profile operations.
type UserRepository interface {
	// FindByUserID retrieves a user by their LINE User ID.
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)
	// Create creates a new user profile.
	Create(ctx context.Context, user *entity.User) error
	// Update updates an existing user profile.
	Update(ctx context.Context, user *entity.User) error
	// Delete deletes a user profile by their LINE User ID.
	Delete(ctx context.Context, userID string) error
}
