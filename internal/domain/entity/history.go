package entity

import (
	"time"

	"carcare/internal/domain/constant"
)

// History is an immutable record of a completed maintenance action.
type History struct {
	ID                string               `gorm:"column:id;primaryKey" bson:"_id"`
	UserID            string               `gorm:"column:user_id;index" bson:"user_id"`
	Kind              constant.HistoryKind `gorm:"column:kind" bson:"kind"`
	Name              string               `gorm:"column:name" bson:"name"`
	VehicleID         *string              `gorm:"column:vehicle_id;index" bson:"vehicle_id,omitempty"`
	VehicleName       *string              `gorm:"column:vehicle_name" bson:"vehicle_name,omitempty"`
	OriginReminderID  *string              `gorm:"column:origin_reminder_id" bson:"origin_reminder_id,omitempty"`
	LastDate          *time.Time           `gorm:"column:last_date" bson:"last_date,omitempty"`
	OdometerAtService *float64             `gorm:"column:odometer_at_service" bson:"odometer_at_service,omitempty"`
	IntervalDistance  *float64             `gorm:"column:interval_distance" bson:"interval_distance,omitempty"`
	DueDistance       *float64             `gorm:"column:due_distance" bson:"due_distance,omitempty"`
	Note              string               `gorm:"column:note" bson:"note"`
	CompletedAt       time.Time            `gorm:"column:completed_at;index" bson:"completed_at"`
}

// TableName specifies the table name for the History entity.
func (History) TableName() string {
	return "history"
}
