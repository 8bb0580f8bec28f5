package entity

import (
	"time"

	"carcare/internal/domain/constant"
)

// Service is a scheduled maintenance service stored under a vehicle.
type Service struct {
	ID                     string                 `gorm:"column:id;primaryKey" bson:"_id"`
	UserID                 string                 `gorm:"column:user_id;index" bson:"user_id"`
	VehicleID              string                 `gorm:"column:vehicle_id;index" bson:"vehicle_id"`
	Name                   string                 `gorm:"column:name" bson:"name"`
	TimeBased              bool                   `gorm:"column:time_based" bson:"time_based"`
	LastDate               time.Time              `gorm:"column:last_date" bson:"last_date"`
	OdometerAtService      *float64               `gorm:"column:odometer_at_service" bson:"odometer_at_service,omitempty"`
	IntervalDistance       *float64               `gorm:"column:interval_distance" bson:"interval_distance,omitempty"`
	AverageMonthlyDistance *float64               `gorm:"column:average_monthly_distance" bson:"average_monthly_distance,omitempty"`
	DueDistance            *float64               `gorm:"column:due_distance" bson:"due_distance,omitempty"`
	DueDate                time.Time              `gorm:"column:due_date;index" bson:"due_date"`
	Status                 constant.ServiceStatus `gorm:"column:status" bson:"status"`
	CreatedAt              time.Time              `gorm:"column:created_at" bson:"created_at"`
}

// TableName specifies the table name for the Service entity.
func (Service) TableName() string {
	return "services"
}
