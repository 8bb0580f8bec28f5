package dto

import (
	"time"

	"carcare/internal/domain/constant"
	"carcare/internal/domain/entity"
)

// HistoryResponse is the DTO for a history entry.
type HistoryResponse struct {
	ID                string               `json:"id"`
	Kind              constant.HistoryKind `json:"kind"`
	Name              string               `json:"name"`
	VehicleID         *string              `json:"vehicle_id,omitempty"`
	VehicleName       *string              `json:"vehicle_name,omitempty"`
	OriginReminderID  *string              `json:"origin_reminder_id,omitempty"`
	LastDate          *time.Time           `json:"last_date,omitempty"`
	OdometerAtService *float64             `json:"odometer_at_service,omitempty"`
	IntervalDistance  *float64             `json:"interval_distance,omitempty"`
	DueDistance       *float64             `json:"due_distance,omitempty"`
	Note              string               `json:"note,omitempty"`
	CompletedAt       time.Time            `json:"completed_at"`
}

// ToHistoryResponseList converts history entries to HistoryResponse DTOs.
func ToHistoryResponseList(entries []*entity.History) []HistoryResponse {
	list := make([]HistoryResponse, len(entries))
	for i, h := range entries {
		list[i] = HistoryResponse{
			ID:                h.ID,
			Kind:              h.Kind,
			Name:              h.Name,
			VehicleID:         h.VehicleID,
			VehicleName:       h.VehicleName,
			OriginReminderID:  h.OriginReminderID,
			LastDate:          h.LastDate,
			OdometerAtService: h.OdometerAtService,
			IntervalDistance:  h.IntervalDistance,
			DueDistance:       h.DueDistance,
			Note:              h.Note,
			CompletedAt:       h.CompletedAt,
		}
	}
	return list
}
