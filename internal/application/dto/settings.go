package dto

import (
	"carcare/internal/domain/constant"
	"carcare/internal/domain/entity"
)

// SettingsResponse is the DTO for a user's settings.
type SettingsResponse struct {
	UserID       string                `json:"user_id"`
	PushOn       bool                  `json:"push_on"`
	EmailOn      bool                  `json:"email_on"`
	DistanceUnit constant.DistanceUnit `json:"distance_unit"`
	AvatarURL    string                `json:"avatar_url,omitempty"`
}

// ToSettingsResponse converts an entity.User to a SettingsResponse DTO.
func ToSettingsResponse(u *entity.User) SettingsResponse {
	return SettingsResponse{
		UserID:       u.ID,
		PushOn:       u.PushOn,
		EmailOn:      u.EmailOn,
		DistanceUnit: u.DistanceUnit,
		AvatarURL:    u.AvatarURL,
	}
}

// UpdateSettingsRequest is the DTO for a partial settings update; nil fields are left unchanged.
type UpdateSettingsRequest struct {
	UserID       string                 `json:"-"`
	PushOn       *bool                  `json:"push_on"`
	EmailOn      *bool                  `json:"email_on"`
	DistanceUnit *constant.DistanceUnit `json:"distance_unit"`
}
