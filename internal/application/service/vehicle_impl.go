package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"carcare/internal/application/dto"
	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"
	appErrors "carcare/internal/pkg/errors"
	"carcare/internal/pkg/logger"

	"github.com/google/uuid"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	serviceRepo repository.ServiceRepository
	log         logger.Logger
	now         func() time.Time
}

// NewVehicleService creates a new instance of VehicleService implementation.
func NewVehicleService(vehicleRepo repository.VehicleRepository, serviceRepo repository.ServiceRepository, log logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		serviceRepo: serviceRepo,
		log:         log,
		now:         time.Now,
	}
}

func (s *vehicleService) Register(ctx context.Context, req dto.RegisterVehicleRequest) (*entity.Vehicle, error) {
	vehicle := &entity.Vehicle{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		Nickname:         strings.TrimSpace(req.Nickname),
		Manufacturer:     strings.TrimSpace(req.Manufacturer),
		Model:            strings.TrimSpace(req.Model),
		RegNo:            strings.ToUpper(strings.TrimSpace(req.RegNo)),
		Year:             req.Year,
		CurrentMileageKm: req.CurrentMileageKm,
		FuelType:         strings.TrimSpace(req.FuelType),
		CreatedAt:        s.now(),
	}
	if err := validateVehicle(vehicle, s.now().Year()); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		s.log.Error(fmt.Sprintf("Failed to register vehicle for user %s", req.UserID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Registered vehicle %s for user %s", vehicle.ID, req.UserID))
	return vehicle, nil
}

func validateVehicle(v *entity.Vehicle, currentYear int) error {
	required := []struct{ field, value string }{
		{"nickname", v.Nickname},
		{"manufacturer", v.Manufacturer},
		{"model", v.Model},
		{"reg_no", v.RegNo},
		{"fuel_type", v.FuelType},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", appErrors.ErrInvalidInput, r.field)
		}
	}
	if v.Year < 1900 || v.Year > currentYear+1 {
		return fmt.Errorf("%w: year %d is out of range", appErrors.ErrInvalidInput, v.Year)
	}
	if math.IsNaN(v.CurrentMileageKm) || math.IsInf(v.CurrentMileageKm, 0) || v.CurrentMileageKm < 0 {
		return fmt.Errorf("%w: current mileage must be a non-negative number", appErrors.ErrInvalidInput)
	}
	return nil
}

func (s *vehicleService) List(ctx context.Context, userID string) ([]*entity.Vehicle, error) {
	vehicles, err := s.vehicleRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list vehicles for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return vehicles, nil
}

func (s *vehicleService) Get(ctx context.Context, userID, vehicleID string) (*entity.Vehicle, error) {
	return findVehicle(ctx, s.vehicleRepo, s.log, userID, vehicleID)
}

func (s *vehicleService) Delete(ctx context.Context, userID, vehicleID string) error {
	if _, err := s.Get(ctx, userID, vehicleID); err != nil {
		return err
	}
	if err := s.serviceRepo.DeleteByVehicle(ctx, userID, vehicleID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete services of vehicle %s", vehicleID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if err := s.vehicleRepo.Delete(ctx, userID, vehicleID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete vehicle %s", vehicleID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted vehicle %s for user %s", vehicleID, userID))
	return nil
}

// findVehicle loads a vehicle, mapping a missing record to ErrVehicleNotFound.
func findVehicle(ctx context.Context, repo repository.VehicleRepository, log logger.Logger, userID, vehicleID string) (*entity.Vehicle, error) {
	vehicle, err := repo.FindByID(ctx, userID, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.ErrVehicleNotFound
		}
		log.Error(fmt.Sprintf("Failed to find vehicle %s for user %s", vehicleID, userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return vehicle, nil
}
