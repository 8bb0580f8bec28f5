package entity

import (
	"time"

	"carcare/internal/domain/constant"
)

// User holds the per-user profile settings. ID is the LINE user id.
type User struct {
	ID           string                `gorm:"column:user_id;primaryKey" bson:"_id"`
	PushOn       bool                  `gorm:"column:push_on" bson:"push_on"`
	EmailOn      bool                  `gorm:"column:email_on" bson:"email_on"`
	DistanceUnit constant.DistanceUnit `gorm:"column:distance_unit" bson:"distance_unit"`
	AvatarURL    string                `gorm:"column:avatar_url" bson:"avatar_url"`
	CreatedAt    time.Time             `gorm:"column:created_at" bson:"created_at"`
}

// TableName specifies the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// NewUser returns a user with the default settings.
func NewUser(id string, now time.Time) *User {
	return &User{
		ID:           id,
		PushOn:       true,
		EmailOn:      false,
		DistanceUnit: constant.UnitKm,
		CreatedAt:    now,
	}
}
