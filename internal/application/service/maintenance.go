package service

import (
	"context"

	"carcare/internal/application/dto"
	"carcare/internal/domain/catalog"
	"carcare/internal/domain/entity"
)

// MaintenanceService defines the interface for scheduled services on vehicles.
type MaintenanceService interface {
	// Catalog returns the known service types with their recommended intervals.
	Catalog() []catalog.Entry
	// Preview computes the next due for a form without saving anything.
	Preview(req dto.PreviewRequest) (*dto.PreviewResponse, error)
	// Record saves a completed service, schedules the next one and creates its reminder.
	Record(ctx context.Context, req dto.RecordServiceRequest) (*entity.Service, *entity.Reminder, error)
	// ListByVehicle splits a vehicle's scheduled services into due and coming.
	ListByVehicle(ctx context.Context, userID, vehicleID string) (*dto.ServiceListResponse, error)
	// Complete moves a scheduled service into the vehicle's history.
	Complete(ctx context.Context, userID, vehicleID, serviceID string) error
	// Delete removes a scheduled service.
	Delete(ctx context.Context, userID, vehicleID, serviceID string) error
}
