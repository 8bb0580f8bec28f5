package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"carcare/internal/application/dto"
	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"
	appErrors "carcare/internal/pkg/errors" // Alias to avoid collision
	"carcare/internal/pkg/logger"
)

var allowedAvatarTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type userService struct {
	userRepo    repository.UserRepository
	vehicleRepo repository.VehicleRepository
	serviceRepo repository.ServiceRepository
	historyRepo repository.HistoryRepository
	reminderSvc ReminderService // Cancels notifications while deleting reminders
	photos      PhotoStore      // nil when no photo store is configured
	log         logger.Logger
	now         func() time.Time
}

// NewUserService creates a new instance of UserService implementation.
func NewUserService(
	userRepo repository.UserRepository,
	vehicleRepo repository.VehicleRepository,
	serviceRepo repository.ServiceRepository,
	historyRepo repository.HistoryRepository,
	reminderSvc ReminderService,
	photos PhotoStore,
	log logger.Logger,
) UserService {
	return &userService{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		serviceRepo: serviceRepo,
		historyRepo: historyRepo,
		reminderSvc: reminderSvc,
		photos:      photos,
		log:         log,
		now:         time.Now,
	}
}

func (s *userService) GetOrCreateUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err == nil {
		s.log.Debug(fmt.Sprintf("Found existing user %s", userID))
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.log.Error(fmt.Sprintf("Failed to find user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	s.log.Info(fmt.Sprintf("User %s not found, creating new user.", userID))
	newUser := entity.NewUser(userID, s.now())
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		s.log.Error("Failed to create user", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return newUser, nil
}

func (s *userService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*entity.User, error) {
	if req.DistanceUnit != nil && !req.DistanceUnit.Valid() {
		return nil, fmt.Errorf("%w: unsupported distance unit %q", appErrors.ErrInvalidInput, *req.DistanceUnit)
	}
	user, err := s.GetOrCreateUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.PushOn != nil {
		user.PushOn = *req.PushOn
	}
	if req.EmailOn != nil {
		user.EmailOn = *req.EmailOn
	}
	if req.DistanceUnit != nil {
		user.DistanceUnit = *req.DistanceUnit
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update settings for user %s", req.UserID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Debug(fmt.Sprintf("Updated settings for user %s", req.UserID))
	return user, nil
}

func (s *userService) UploadAvatar(ctx context.Context, userID, filename string, file io.Reader) (*entity.User, error) {
	if s.photos == nil {
		return nil, appErrors.ErrStorageUnavailable
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedAvatarTypes[ext] {
		return nil, fmt.Errorf("%w: invalid file type %q, allowed types: jpg, jpeg, png, gif, webp", appErrors.ErrInvalidInput, ext)
	}
	user, err := s.GetOrCreateUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.photos.UploadAvatar(ctx, userID, file)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to upload avatar for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrUpload, err)
	}
	user.AvatarURL = url
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to save avatar URL for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Updated avatar for user %s", userID))
	return user, nil
}

// DeleteUser removes everything stored for the user. Each step is attempted
// even if an earlier one fails; the first failure is returned.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	var firstErr error
	record := func(step string, err error) {
		if err == nil {
			return
		}
		s.log.Error(fmt.Sprintf("Failed to delete %s for user %s during unfollow", step, userID), err)
		if firstErr == nil {
			firstErr = err
		}
	}

	record("reminders", s.reminderSvc.DeleteAllForUser(ctx, userID))
	record("services", s.wrapDB(s.serviceRepo.DeleteByUserID(ctx, userID)))
	record("vehicles", s.wrapDB(s.vehicleRepo.DeleteByUserID(ctx, userID)))
	record("history", s.wrapDB(s.historyRepo.DeleteByUserID(ctx, userID)))

	if s.photos != nil {
		if err := s.photos.DeleteAvatar(ctx, userID); err != nil {
			s.log.Warn(fmt.Sprintf("Failed to delete avatar for user %s: %v", userID, err))
		}
	}

	record("profile", s.wrapDB(s.userRepo.Delete(ctx, userID)))
	if firstErr != nil {
		return firstErr
	}
	s.log.Info(fmt.Sprintf("Deleted all data for user %s due to unfollow.", userID))
	return nil
}

func (s *userService) wrapDB(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
}
