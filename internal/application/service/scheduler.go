package service

import (
	"context"
	"time"
)

// Notification is a one-shot message to deliver at FireAt.
type Notification struct {
	Title  string
	Body   string
	FireAt time.Time
	Data   map[string]string
}

// DeliveryHandler is invoked when a scheduled notification fires.
type DeliveryHandler func(ctx context.Context, notificationID string, n Notification) error

// NotificationScheduler defines the interface for one-shot notification scheduling.
type NotificationScheduler interface {
	// Init reports whether notifications can be delivered. Safe to call repeatedly.
	Init(ctx context.Context) bool
	// ScheduleOneShot schedules n and returns its id, or nil when notifications are disabled.
	ScheduleOneShot(ctx context.Context, n Notification) (*string, error)
	// CancelNotification cancels a scheduled notification. Nil or unknown ids are a no-op.
	CancelNotification(ctx context.Context, id *string) error
	// SetDeliveryHandler sets the function that delivers fired notifications.
	// It is called during dependency setup to break the circular dependency
	// with ReminderService.
	SetDeliveryHandler(handler DeliveryHandler)
	// Stop stops the underlying scheduler.
	Stop()
}
