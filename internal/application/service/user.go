package service

import (
	"context"
	"io"

	"carcare/internal/application/dto"
	"carcare/internal/domain/entity"
)

// PhotoStore stores user avatars.
type PhotoStore interface {
	UploadAvatar(ctx context.Context, userID string, file io.Reader) (string, error)
	DeleteAvatar(ctx context.Context, userID string) error
}

// UserService defines the interface for user profile and settings logic.
type UserService interface {
	// GetOrCreateUser finds a user by ID or creates one with default settings.
	GetOrCreateUser(ctx context.Context, userID string) (*entity.User, error)
	// UpdateSettings applies a partial settings update.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*entity.User, error)
	// UploadAvatar stores a new avatar image and records its URL.
	UploadAvatar(ctx context.Context, userID, filename string, file io.Reader) (*entity.User, error)
	// DeleteUser handles the unfollow event, deleting all user data.
	DeleteUser(ctx context.Context, userID string) error
}
