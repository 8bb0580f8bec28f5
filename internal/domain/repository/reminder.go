package repository

import (
	"context"

	"carcare/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
// Every lookup is scoped to the owning user.
type ReminderRepository interface {
	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error)
	// FindByUserID retrieves all reminders for a user ordered by due date.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	// FindPending retrieves pending reminders of every user (used for rescheduling on startup).
	FindPending(ctx context.Context) ([]*entity.Reminder, error)
	// Create stores a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error
	// Update saves all fields of an existing reminder.
	Update(ctx context.Context, reminder *entity.Reminder) error
	// Complete saves the completed reminder and appends its history entry as one unit.
	Complete(ctx context.Context, reminder *entity.Reminder, entry *entity.History) error
	// Delete deletes a reminder by its ID.
	Delete(ctx context.Context, userID, id string) error
	// DeleteByUserID deletes all reminders for a user.
	DeleteByUserID(ctx context.Context, userID string) error
}
