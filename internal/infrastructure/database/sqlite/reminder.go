package sqlite

import (
	"context"
	"errors"
	"fmt"

	"carcare/internal/domain/constant"
	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder with ID %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminder by id %s: %w", id, err)
	}
	return &reminder, nil
}

// FindByUserID retrieves all reminders for a specific user ordered by due date.
func (r *reminderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("due_at asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminders by user_id %s: %w", userID, err)
	}
	return reminders, nil
}

// FindPending retrieves pending reminders of all users.
func (r *reminderRepository) FindPending(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("status = ?", constant.ReminderPending).Order("due_at asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find pending reminders: %w", err)
	}
	return reminders, nil
}

// Create creates a new reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	if err := r.db.WithContext(ctx).Create(reminderRow(reminder)).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create reminder for user %s: %w", reminder.UserID, err)
	}
	return nil
}

// Update updates every column of an existing reminder, including zero values.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	return updateReminder(r.db.WithContext(ctx), reminder)
}

// Complete saves the reminder and appends the history entry in one transaction.
func (r *reminderRepository) Complete(ctx context.Context, reminder *entity.Reminder, entry *entity.History) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateReminder(tx, reminder); err != nil {
			return err
		}
		if err := tx.Create(historyRow(entry)).Error; err != nil {
			return fmt.Errorf("🔴 ERROR: failed to append history for reminder %s: %w", reminder.ID, err)
		}
		return nil
	})
}

// Delete deletes a reminder by its ID.
func (r *reminderRepository) Delete(ctx context.Context, userID, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminder %s: %w", id, err)
	}
	return nil
}

// DeleteByUserID deletes all reminders for a specific user.
func (r *reminderRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminders for user %s: %w", userID, err)
	}
	return nil
}

func updateReminder(db *gorm.DB, reminder *entity.Reminder) error {
	result := db.Model(&entity.Reminder{}).
		Where("id = ? AND user_id = ?", reminder.ID, reminder.UserID).
		Select("*").
		Updates(reminderRow(reminder))
	if result.Error != nil {
		return fmt.Errorf("🔴 ERROR: failed to update reminder %s: %w", reminder.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder with ID %s: %w", reminder.ID, repository.ErrNotFound)
	}
	return nil
}
