package service

import (
	"context"

	"carcare/internal/application/dto"
	"carcare/internal/domain/entity"
)

// Pusher delivers a text message to a user.
type Pusher interface {
	PushText(ctx context.Context, to, text string) error
}

// ReminderService defines the interface for the reminder lifecycle.
// Every operation keeps the persisted reminder and its scheduled
// notification in step.
type ReminderService interface {
	// Create persists a pending reminder and schedules its notification.
	// Scheduling failures are logged and never abort creation.
	Create(ctx context.Context, req dto.CreateReminderRequest) (*entity.Reminder, error)
	// QuickAdd creates a reminder due a number of days from now.
	QuickAdd(ctx context.Context, req dto.QuickAddReminderRequest) (*entity.Reminder, error)
	// Snooze moves the due date forward by req.Days and re-schedules the notification.
	Snooze(ctx context.Context, req dto.SnoozeRequest) (*entity.Reminder, error)
	// Complete marks a reminder done and appends a history entry.
	Complete(ctx context.Context, userID, reminderID string) (*entity.Reminder, error)
	// Undo reverts a completed reminder to pending and re-schedules its notification.
	Undo(ctx context.Context, userID, reminderID string) (*entity.Reminder, error)
	// Delete cancels the notification and removes the reminder.
	Delete(ctx context.Context, userID, reminderID string) error
	// List returns the user's reminders grouped into upcoming, overdue and completed.
	List(ctx context.Context, userID string) (*dto.ReminderBoard, error)
	// Get retrieves a reminder by its ID.
	Get(ctx context.Context, userID, reminderID string) (*entity.Reminder, error)
	// HandleDueNotification delivers a fired notification via LINE.
	HandleDueNotification(ctx context.Context, notificationID string, n Notification) error
	// InitializeSchedules re-creates notification jobs for pending reminders on startup.
	InitializeSchedules(ctx context.Context) error
	// DeleteAllForUser cancels every notification and deletes all reminders of a user.
	DeleteAllForUser(ctx context.Context, userID string) error
}
