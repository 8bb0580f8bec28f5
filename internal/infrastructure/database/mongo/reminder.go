package mongo

import (
	"context"
	"fmt"

	"carcare/internal/domain/constant"
	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reminderRepository struct {
	reminders *mongo.Collection
	history   *mongo.Collection
}

// NewReminderRepository creates a ReminderRepository backed by MongoDB.
func NewReminderRepository(db *mongo.Database) repository.ReminderRepository {
	return &reminderRepository{
		reminders: db.Collection(RemindersCollection),
		history:   db.Collection(HistoryCollection),
	}
}

func (r *reminderRepository) FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := r.reminders.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&reminder)
	if err != nil {
		return nil, wrapFindOne(err, "reminder", id)
	}
	return &reminder, nil
}

func (r *reminderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *reminderRepository) FindPending(ctx context.Context) ([]*entity.Reminder, error) {
	return r.find(ctx, bson.M{"status": constant.ReminderPending})
}

func (r *reminderRepository) find(ctx context.Context, filter bson.M) ([]*entity.Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_at", Value: 1}})
	cursor, err := r.reminders.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to query reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var reminders []*entity.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to decode reminders: %w", err)
	}
	return reminders, nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	if _, err := r.reminders.InsertOne(ctx, reminder); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create reminder for user %s: %w", reminder.UserID, err)
	}
	return nil
}

// Update replaces the whole document so cleared optional fields are removed.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	result, err := r.reminders.ReplaceOne(ctx, bson.M{"_id": reminder.ID, "user_id": reminder.UserID}, reminder)
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update reminder %s: %w", reminder.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reminder with ID %s: %w", reminder.ID, repository.ErrNotFound)
	}
	return nil
}

// Complete updates the reminder and then appends the history entry. Standalone
// servers have no multi-document transactions, so the order is the guarantee:
// history is never written for a reminder that was not marked done.
func (r *reminderRepository) Complete(ctx context.Context, reminder *entity.Reminder, entry *entity.History) error {
	if err := r.Update(ctx, reminder); err != nil {
		return err
	}
	if _, err := r.history.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to append history for reminder %s: %w", reminder.ID, err)
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.reminders.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminder %s: %w", id, err)
	}
	return nil
}

func (r *reminderRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.reminders.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminders for user %s: %w", userID, err)
	}
	return nil
}
