package dto

import (
	"fmt"
	"time"

	"carcare/internal/domain/entity"
	appErrors "carcare/internal/pkg/errors"
)

// DateLayout is the calendar-date format accepted from forms.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD form date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", appErrors.ErrInvalidInput, value)
	}
	return t, nil
}

// PreviewRequest is the DTO for computing a due date without saving anything.
type PreviewRequest struct {
	Name                   string   `json:"name"`
	LastDate               string   `json:"last_date"`
	OdometerAtService      *float64 `json:"odometer_at_service"`
	IntervalDistance       *float64 `json:"interval_distance"`
	AverageMonthlyDistance *float64 `json:"average_monthly_distance"`
}

// PreviewResponse carries the computed due.
type PreviewResponse struct {
	TimeBased   bool      `json:"time_based"`
	DueDate     time.Time `json:"due_date"`
	DueDistance *float64  `json:"due_distance,omitempty"`
}

// RecordServiceRequest is the DTO for recording a completed service on a vehicle.
type RecordServiceRequest struct {
	UserID    string `json:"-"`
	VehicleID string `json:"-"`
	PreviewRequest
}

// ServiceResponse is the DTO for a scheduled service.
type ServiceResponse struct {
	ID                     string    `json:"id"`
	VehicleID              string    `json:"vehicle_id"`
	Name                   string    `json:"name"`
	TimeBased              bool      `json:"time_based"`
	LastDate               time.Time `json:"last_date"`
	OdometerAtService      *float64  `json:"odometer_at_service,omitempty"`
	IntervalDistance       *float64  `json:"interval_distance,omitempty"`
	AverageMonthlyDistance *float64  `json:"average_monthly_distance,omitempty"`
	DueDistance            *float64  `json:"due_distance,omitempty"`
	DueDate                time.Time `json:"due_date"`
	Status                 string    `json:"status"`
}

// ToServiceResponse converts an entity.Service to a ServiceResponse DTO.
func ToServiceResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:                     s.ID,
		VehicleID:              s.VehicleID,
		Name:                   s.Name,
		TimeBased:              s.TimeBased,
		LastDate:               s.LastDate,
		OdometerAtService:      s.OdometerAtService,
		IntervalDistance:       s.IntervalDistance,
		AverageMonthlyDistance: s.AverageMonthlyDistance,
		DueDistance:            s.DueDistance,
		DueDate:                s.DueDate,
		Status:                 string(s.Status),
	}
}

// RecordServiceResponse returns the saved service and the reminder created for it.
type RecordServiceResponse struct {
	Service  ServiceResponse  `json:"service"`
	Reminder ReminderResponse `json:"reminder"`
}

// ServiceListResponse splits a vehicle's scheduled services into those already
// due and those still coming.
type ServiceListResponse struct {
	Due    []ServiceResponse `json:"due"`
	Coming []ServiceResponse `json:"coming"`
}
