package dto

import (
	"time"

	"carcare/internal/domain/entity"
)

// RegisterVehicleRequest is the DTO for registering a vehicle.
type RegisterVehicleRequest struct {
	UserID           string  `json:"-"`
	Nickname         string  `json:"nickname"`
	Manufacturer     string  `json:"manufacturer"`
	Model            string  `json:"model"`
	RegNo            string  `json:"reg_no"`
	Year             int     `json:"year"`
	CurrentMileageKm float64 `json:"current_mileage_km"`
	FuelType         string  `json:"fuel_type"`
}

// VehicleResponse is the DTO for sending vehicle information to the client.
type VehicleResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Nickname         string    `json:"nickname"`
	Manufacturer     string    `json:"manufacturer"`
	Model            string    `json:"model"`
	RegNo            string    `json:"reg_no"`
	Year             int       `json:"year"`
	CurrentMileageKm float64   `json:"current_mileage_km"`
	FuelType         string    `json:"fuel_type"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToVehicleResponse converts an entity.Vehicle to a VehicleResponse DTO.
func ToVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:               v.ID,
		Name:             v.DisplayName(),
		Nickname:         v.Nickname,
		Manufacturer:     v.Manufacturer,
		Model:            v.Model,
		RegNo:            v.RegNo,
		Year:             v.Year,
		CurrentMileageKm: v.CurrentMileageKm,
		FuelType:         v.FuelType,
		CreatedAt:        v.CreatedAt,
	}
}

// ToVehicleResponseList converts a slice of entity.Vehicle to VehicleResponse DTOs.
func ToVehicleResponseList(vehicles []*entity.Vehicle) []VehicleResponse {
	list := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		list[i] = ToVehicleResponse(v)
	}
	return list
}
