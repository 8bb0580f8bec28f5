package entity

import (
	"time"

	"carcare/internal/domain/constant"
)

// Reminder is a pending or completed maintenance obligation.
type Reminder struct {
	ID                      string                  `gorm:"column:id;primaryKey" bson:"_id"`
	UserID                  string                  `gorm:"column:user_id;index" bson:"user_id"`
	Title                   string                  `gorm:"column:title" bson:"title"`
	VehicleID               *string                 `gorm:"column:vehicle_id" bson:"vehicle_id,omitempty"`
	VehicleName             *string                 `gorm:"column:vehicle_name" bson:"vehicle_name,omitempty"`
	ServiceID               *string                 `gorm:"column:service_id" bson:"service_id,omitempty"`
	Kind                    constant.ReminderKind   `gorm:"column:kind" bson:"kind"`
	DueAt                   time.Time               `gorm:"column:due_at;index" bson:"due_at"`
	DueDistance             *float64                `gorm:"column:due_distance" bson:"due_distance,omitempty"`
	Status                  constant.ReminderStatus `gorm:"column:status" bson:"status"`
	ScheduledNotificationID *string                 `gorm:"column:scheduled_notification_id" bson:"scheduled_notification_id,omitempty"`
	CreatedAt               time.Time               `gorm:"column:created_at" bson:"created_at"`
	CompletedAt             *time.Time              `gorm:"column:completed_at" bson:"completed_at,omitempty"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// Classify derives upcoming/overdue/completed at the given instant.
func (r *Reminder) Classify(now time.Time) constant.Classification {
	if r.Status == constant.ReminderDone {
		return constant.ClassCompleted
	}
	if r.DueAt.Before(now) {
		return constant.ClassOverdue
	}
	return constant.ClassUpcoming
}
