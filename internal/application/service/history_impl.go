package service

import (
	"context"
	"fmt"

	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"
	appErrors "carcare/internal/pkg/errors"
	"carcare/internal/pkg/logger"
)

type historyService struct {
	historyRepo repository.HistoryRepository
	vehicleRepo repository.VehicleRepository
	log         logger.Logger
}

// NewHistoryService creates a new instance of HistoryService implementation.
func NewHistoryService(historyRepo repository.HistoryRepository, vehicleRepo repository.VehicleRepository, log logger.Logger) HistoryService {
	return &historyService{
		historyRepo: historyRepo,
		vehicleRepo: vehicleRepo,
		log:         log,
	}
}

func (s *historyService) ListForUser(ctx context.Context, userID string) ([]*entity.History, error) {
	entries, err := s.historyRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list history for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return entries, nil
}

func (s *historyService) ListForVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.History, error) {
	if _, err := findVehicle(ctx, s.vehicleRepo, s.log, userID, vehicleID); err != nil {
		return nil, err
	}
	entries, err := s.historyRepo.FindByVehicle(ctx, userID, vehicleID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list history for vehicle %s", vehicleID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return entries, nil
}
