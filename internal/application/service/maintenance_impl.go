package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carcare/internal/application/dto"
	"carcare/internal/domain/catalog"
	"carcare/internal/domain/constant"
	"carcare/internal/domain/due"
	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"
	appErrors "carcare/internal/pkg/errors"
	"carcare/internal/pkg/logger"

	"github.com/google/uuid"
)

const batteryReminderTitle = "Battery replacement"

type maintenanceService struct {
	serviceRepo repository.ServiceRepository
	vehicleRepo repository.VehicleRepository
	reminderSvc ReminderService
	log         logger.Logger
	now         func() time.Time
}

// NewMaintenanceService creates a new instance of MaintenanceService implementation.
func NewMaintenanceService(
	serviceRepo repository.ServiceRepository,
	vehicleRepo repository.VehicleRepository,
	reminderSvc ReminderService,
	log logger.Logger,
) MaintenanceService {
	return &maintenanceService{
		serviceRepo: serviceRepo,
		vehicleRepo: vehicleRepo,
		reminderSvc: reminderSvc,
		log:         log,
		now:         time.Now,
	}
}

func (s *maintenanceService) Catalog() []catalog.Entry {
	return catalog.All()
}

func (s *maintenanceService) Preview(req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	_, record, result, err := s.compute(req)
	if err != nil {
		return nil, err
	}
	return &dto.PreviewResponse{
		TimeBased:   record.IsTimeBased,
		DueDate:     result.DueDate,
		DueDistance: result.DueDistance,
	}, nil
}

// compute validates the form and runs the due-date calculation.
func (s *maintenanceService) compute(req dto.PreviewRequest) (string, due.ServiceRecord, due.Due, error) {
	name := catalog.CleanName(req.Name)
	if name == "" {
		return "", due.ServiceRecord{}, due.Due{}, fmt.Errorf("%w: service name is required", appErrors.ErrInvalidInput)
	}
	if entry, ok := catalog.Lookup(name); ok {
		name = entry.Name
	}
	lastDate, err := dto.ParseDate(req.LastDate)
	if err != nil {
		return "", due.ServiceRecord{}, due.Due{}, err
	}
	if lastDate.After(s.now()) {
		return "", due.ServiceRecord{}, due.Due{}, fmt.Errorf("%w: last service date cannot be in the future", appErrors.ErrInvalidInput)
	}

	record := due.ServiceRecord{
		ServiceName:            name,
		IsTimeBased:            catalog.IsTimeBased(name),
		LastServiceDate:        lastDate,
		OdometerAtService:      req.OdometerAtService,
		IntervalDistance:       req.IntervalDistance,
		AverageMonthlyDistance: req.AverageMonthlyDistance,
	}
	if record.IsTimeBased {
		record.OdometerAtService, record.IntervalDistance, record.AverageMonthlyDistance = nil, nil, nil
	}
	result, err := due.ComputeNextDue(record)
	if err != nil {
		return "", due.ServiceRecord{}, due.Due{}, err
	}
	return name, record, result, nil
}

func (s *maintenanceService) Record(ctx context.Context, req dto.RecordServiceRequest) (*entity.Service, *entity.Reminder, error) {
	vehicle, err := findVehicle(ctx, s.vehicleRepo, s.log, req.UserID, req.VehicleID)
	if err != nil {
		return nil, nil, err
	}
	name, record, result, err := s.compute(req.PreviewRequest)
	if err != nil {
		return nil, nil, err
	}

	svc := &entity.Service{
		ID:                     uuid.NewString(),
		UserID:                 req.UserID,
		VehicleID:              vehicle.ID,
		Name:                   name,
		TimeBased:              record.IsTimeBased,
		LastDate:               record.LastServiceDate,
		OdometerAtService:      record.OdometerAtService,
		IntervalDistance:       record.IntervalDistance,
		AverageMonthlyDistance: record.AverageMonthlyDistance,
		DueDistance:            result.DueDistance,
		DueDate:                result.DueDate,
		Status:                 constant.ServiceScheduled,
		CreatedAt:              s.now(),
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		s.log.Error(fmt.Sprintf("Failed to save service %s for vehicle %s", name, vehicle.ID), err)
		return nil, nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	reminder, err := s.reminderSvc.Create(ctx, serviceReminderRequest(svc, vehicle))
	if err != nil {
		s.log.Error(fmt.Sprintf("Service %s saved but its reminder could not be created", svc.ID), err)
		return nil, nil, err
	}
	s.log.Info(fmt.Sprintf("Recorded %s for vehicle %s, next due %v", name, vehicle.ID, svc.DueDate))
	return svc, reminder, nil
}

// serviceReminderRequest builds the reminder and its notification text for a scheduled service.
func serviceReminderRequest(svc *entity.Service, vehicle *entity.Vehicle) dto.CreateReminderRequest {
	vehicleID := vehicle.ID
	vehicleName := vehicle.DisplayName()
	serviceID := svc.ID
	dueOn := svc.DueDate.Format(displayDateLayout)

	req := dto.CreateReminderRequest{
		UserID:      svc.UserID,
		Title:       svc.Name,
		Kind:        constant.KindService,
		VehicleID:   &vehicleID,
		VehicleName: &vehicleName,
		ServiceID:   &serviceID,
		DueAt:       svc.DueDate,
		DueDistance: svc.DueDistance,
	}
	if svc.TimeBased {
		req.Title = batteryReminderTitle
		req.Kind = constant.KindBattery
		req.NotificationTitle = batteryReminderTitle
		req.NotificationBody = fmt.Sprintf("Battery replacement due on %s. Remember to check voltage regularly.", dueOn)
		return req
	}
	req.NotificationTitle = svc.Name + " service"
	req.NotificationBody = "Due on " + dueOn
	if svc.DueDistance != nil {
		req.NotificationBody += fmt.Sprintf(" at %s km", formatDistance(*svc.DueDistance))
	}
	return req
}

func (s *maintenanceService) ListByVehicle(ctx context.Context, userID, vehicleID string) (*dto.ServiceListResponse, error) {
	if _, err := findVehicle(ctx, s.vehicleRepo, s.log, userID, vehicleID); err != nil {
		return nil, err
	}
	services, err := s.serviceRepo.FindByVehicle(ctx, userID, vehicleID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list services for vehicle %s", vehicleID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	resp := &dto.ServiceListResponse{Due: []dto.ServiceResponse{}, Coming: []dto.ServiceResponse{}}
	for _, svc := range services {
		if svc.DueDate.Before(today) {
			resp.Due = append(resp.Due, dto.ToServiceResponse(svc))
		} else {
			resp.Coming = append(resp.Coming, dto.ToServiceResponse(svc))
		}
	}
	return resp, nil
}

func (s *maintenanceService) Complete(ctx context.Context, userID, vehicleID, serviceID string) error {
	vehicle, err := findVehicle(ctx, s.vehicleRepo, s.log, userID, vehicleID)
	if err != nil {
		return err
	}
	svc, err := s.findService(ctx, userID, vehicleID, serviceID)
	if err != nil {
		return err
	}

	vehicleName := vehicle.DisplayName()
	lastDate := svc.LastDate
	entry := &entity.History{
		ID:                uuid.NewString(),
		UserID:            userID,
		Kind:              constant.HistoryService,
		Name:              svc.Name,
		VehicleID:         &vehicle.ID,
		VehicleName:       &vehicleName,
		LastDate:          &lastDate,
		OdometerAtService: svc.OdometerAtService,
		IntervalDistance:  svc.IntervalDistance,
		DueDistance:       svc.DueDistance,
		CompletedAt:       s.now(),
	}
	if err := s.serviceRepo.CompleteWithHistory(ctx, svc, entry); err != nil {
		s.log.Error(fmt.Sprintf("Failed to complete service %s", serviceID), err)
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.ErrServiceNotFound
		}
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Completed service %s on vehicle %s", serviceID, vehicleID))
	return nil
}

func (s *maintenanceService) Delete(ctx context.Context, userID, vehicleID, serviceID string) error {
	if _, err := s.findService(ctx, userID, vehicleID, serviceID); err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(ctx, userID, vehicleID, serviceID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete service %s", serviceID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted service %s on vehicle %s", serviceID, vehicleID))
	return nil
}

func (s *maintenanceService) findService(ctx context.Context, userID, vehicleID, serviceID string) (*entity.Service, error) {
	svc, err := s.serviceRepo.FindByID(ctx, userID, vehicleID, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.ErrServiceNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find service %s", serviceID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return svc, nil
}
