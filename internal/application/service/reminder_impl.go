package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"carcare/internal/application/dto"
	"carcare/internal/domain/constant"
	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"
	appErrors "carcare/internal/pkg/errors"
	"carcare/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dataReminderID = "reminder_id"
	dataUserID     = "user_id"

	displayDateLayout = "Jan 2, 2006"
	day               = 24 * time.Hour
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	userRepo     repository.UserRepository
	scheduler    NotificationScheduler
	pusher       Pusher
	log          logger.Logger
	now          func() time.Time
}

// NewReminderService creates a new instance of ReminderService implementation.
// When pusher is nil no delivery handler is registered and notifications stay disabled.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	userRepo repository.UserRepository,
	scheduler NotificationScheduler,
	pusher Pusher,
	log logger.Logger,
) ReminderService {
	rs := &reminderService{
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		scheduler:    scheduler,
		pusher:       pusher,
		log:          log,
		now:          time.Now,
	}
	if pusher != nil {
		scheduler.SetDeliveryHandler(rs.HandleDueNotification)
		log.Info("Delivery handler set for NotificationScheduler.")
	}
	return rs
}

func (s *reminderService) Create(ctx context.Context, req dto.CreateReminderRequest) (*entity.Reminder, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", appErrors.ErrInvalidInput)
	}
	if req.DueAt.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", appErrors.ErrInvalidInput)
	}
	kind := req.Kind
	if kind == "" {
		kind = constant.KindQuick
	}

	reminder := &entity.Reminder{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       title,
		Kind:        kind,
		VehicleID:   req.VehicleID,
		VehicleName: req.VehicleName,
		ServiceID:   req.ServiceID,
		DueAt:       req.DueAt,
		DueDistance: req.DueDistance,
		Status:      constant.ReminderPending,
		CreatedAt:   s.now(),
	}

	n := defaultNotification(reminder)
	if req.NotificationTitle != "" {
		n.Title = req.NotificationTitle
	}
	if req.NotificationBody != "" {
		n.Body = req.NotificationBody
	}
	reminder.ScheduledNotificationID = s.schedule(ctx, reminder, n)

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for user %s", req.UserID), err)
		s.cancel(ctx, reminder.ScheduledNotificationID)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created reminder %s for user %s due %v", reminder.ID, req.UserID, reminder.DueAt))
	return reminder, nil
}

func (s *reminderService) QuickAdd(ctx context.Context, req dto.QuickAddReminderRequest) (*entity.Reminder, error) {
	if req.DueDistance != nil && (math.IsNaN(*req.DueDistance) || math.IsInf(*req.DueDistance, 0) || *req.DueDistance < 0) {
		return nil, fmt.Errorf("%w: due distance must be a non-negative number", appErrors.ErrInvalidInput)
	}
	days := req.DueInDays
	if days < 0 {
		days = 0
	}

	var vehicleName *string
	if req.VehicleName != nil {
		if name := strings.TrimSpace(*req.VehicleName); name != "" {
			vehicleName = &name
		}
	}

	return s.Create(ctx, dto.CreateReminderRequest{
		UserID:      req.UserID,
		Title:       req.Title,
		Kind:        constant.KindQuick,
		VehicleName: vehicleName,
		DueAt:       s.now().Add(time.Duration(days) * day),
		DueDistance: req.DueDistance,
	})
}

func (s *reminderService) Snooze(ctx context.Context, req dto.SnoozeRequest) (*entity.Reminder, error) {
	if req.Days < 1 {
		return nil, fmt.Errorf("%w: snooze days must be at least 1", appErrors.ErrInvalidInput)
	}
	reminder, err := s.find(ctx, req.UserID, req.ReminderID)
	if err != nil {
		return nil, err
	}
	if reminder.Status == constant.ReminderDone {
		return nil, fmt.Errorf("%w: cannot snooze a completed reminder", appErrors.ErrInvalidInput)
	}

	previous := *reminder
	// The old notification is gone before the new one is requested.
	s.cancel(ctx, reminder.ScheduledNotificationID)
	reminder.DueAt = reminder.DueAt.Add(time.Duration(req.Days) * day)
	reminder.ScheduledNotificationID = s.schedule(ctx, reminder, defaultNotification(reminder))

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to save snoozed reminder %s", reminder.ID), err)
		s.cancel(ctx, reminder.ScheduledNotificationID)
		s.restore(ctx, &previous)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Snoozed reminder %s by %d days to %v", reminder.ID, req.Days, reminder.DueAt))
	return reminder, nil
}

func (s *reminderService) Complete(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	reminder, err := s.find(ctx, userID, reminderID)
	if err != nil {
		return nil, err
	}
	if reminder.Status == constant.ReminderDone {
		return nil, fmt.Errorf("%w: reminder is already completed", appErrors.ErrInvalidInput)
	}

	previous := *reminder
	s.cancel(ctx, reminder.ScheduledNotificationID)

	now := s.now()
	reminder.Status = constant.ReminderDone
	reminder.CompletedAt = &now
	reminder.ScheduledNotificationID = nil

	originID := reminder.ID
	entry := &entity.History{
		ID:               uuid.NewString(),
		UserID:           userID,
		Kind:             constant.HistoryReminder,
		Name:             reminder.Title,
		VehicleID:        reminder.VehicleID,
		VehicleName:      reminder.VehicleName,
		OriginReminderID: &originID,
		DueDistance:      reminder.DueDistance,
		Note:             completionNote(reminder.DueDistance),
		CompletedAt:      now,
	}
	if err := s.reminderRepo.Complete(ctx, reminder, entry); err != nil {
		s.log.Error(fmt.Sprintf("Failed to complete reminder %s", reminder.ID), err)
		s.restore(ctx, &previous)
		return nil, s.wrapRepoError(err, appErrors.ErrReminderNotFound)
	}
	s.log.Info(fmt.Sprintf("Completed reminder %s for user %s", reminder.ID, userID))
	return reminder, nil
}

func (s *reminderService) Undo(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	reminder, err := s.find(ctx, userID, reminderID)
	if err != nil {
		return nil, err
	}
	if reminder.Status != constant.ReminderDone {
		return nil, fmt.Errorf("%w: only completed reminders can be undone", appErrors.ErrInvalidInput)
	}

	reminder.Status = constant.ReminderPending
	reminder.CompletedAt = nil
	reminder.ScheduledNotificationID = s.schedule(ctx, reminder, defaultNotification(reminder))

	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to undo reminder %s", reminder.ID), err)
		s.cancel(ctx, reminder.ScheduledNotificationID)
		return nil, s.wrapRepoError(err, appErrors.ErrReminderNotFound)
	}
	s.log.Info(fmt.Sprintf("Reverted reminder %s to pending", reminder.ID))
	return reminder, nil
}

func (s *reminderService) Delete(ctx context.Context, userID, reminderID string) error {
	reminder, err := s.find(ctx, userID, reminderID)
	if err != nil {
		return err
	}
	s.cancel(ctx, reminder.ScheduledNotificationID)
	if err := s.reminderRepo.Delete(ctx, userID, reminderID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminder %s", reminderID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted reminder %s for user %s", reminderID, userID))
	return nil
}

func (s *reminderService) List(ctx context.Context, userID string) (*dto.ReminderBoard, error) {
	reminders, err := s.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list reminders for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	board := dto.NewReminderBoard(reminders, s.now())
	return &board, nil
}

func (s *reminderService) Get(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	return s.find(ctx, userID, reminderID)
}

func (s *reminderService) HandleDueNotification(ctx context.Context, notificationID string, n Notification) error {
	userID, reminderID := n.Data[dataUserID], n.Data[dataReminderID]
	s.log.Info(fmt.Sprintf("Handling notification %s for reminder %s", notificationID, reminderID))

	reminder, err := s.reminderRepo.FindByID(ctx, userID, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn(fmt.Sprintf("Reminder %s not found during notification handling (already deleted?)", reminderID))
			return nil
		}
		s.log.Error(fmt.Sprintf("Failed to find reminder %s for notification", reminderID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if reminder.Status == constant.ReminderDone ||
		reminder.ScheduledNotificationID == nil ||
		*reminder.ScheduledNotificationID != notificationID {
		s.log.Debug(fmt.Sprintf("Skipping stale notification %s for reminder %s", notificationID, reminderID))
		return nil
	}

	var pushErr error
	if s.pusher != nil {
		if err := s.pusher.PushText(ctx, userID, n.Title+"\n"+n.Body); err != nil {
			s.log.Error(fmt.Sprintf("Failed to push notification for reminder %s to user %s", reminderID, userID), err)
			pushErr = fmt.Errorf("%w: %v", appErrors.ErrLineAPI, err)
		}
	}

	// The job has fired either way, so the reminder no longer has a live notification.
	reminder.ScheduledNotificationID = nil
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to clear notification id of reminder %s", reminderID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return pushErr
}

func (s *reminderService) InitializeSchedules(ctx context.Context) error {
	s.log.Info("Initializing notification schedules from database...")
	reminders, err := s.reminderRepo.FindPending(ctx)
	if err != nil {
		s.log.Error("Failed to load pending reminders for scheduling", err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	now := s.now()
	scheduled, cleared := 0, 0
	for _, reminder := range reminders {
		hadID := reminder.ScheduledNotificationID != nil
		reminder.ScheduledNotificationID = nil
		if reminder.DueAt.After(now) {
			reminder.ScheduledNotificationID = s.schedule(ctx, reminder, defaultNotification(reminder))
		}
		if reminder.ScheduledNotificationID == nil && !hadID {
			continue
		}
		if err := s.reminderRepo.Update(ctx, reminder); err != nil {
			s.log.Error(fmt.Sprintf("Failed to store notification id for reminder %s", reminder.ID), err)
			s.cancel(ctx, reminder.ScheduledNotificationID)
			continue
		}
		if reminder.ScheduledNotificationID != nil {
			scheduled++
		} else {
			cleared++
		}
	}
	s.log.Info(fmt.Sprintf("Scheduled %d notifications, cleared %d stale ids (%d pending reminders).", scheduled, cleared, len(reminders)))
	return nil
}

func (s *reminderService) DeleteAllForUser(ctx context.Context, userID string) error {
	reminders, err := s.reminderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to find reminders for user %s during deletion", userID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	for _, reminder := range reminders {
		s.cancel(ctx, reminder.ScheduledNotificationID)
	}
	if err := s.reminderRepo.DeleteByUserID(ctx, userID); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminders for user %s", userID), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted %d reminders for user %s", len(reminders), userID))
	return nil
}

// find loads a reminder, mapping a missing record to ErrReminderNotFound.
func (s *reminderService) find(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, userID, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.ErrReminderNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find reminder %s for user %s", reminderID, userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return reminder, nil
}

func (s *reminderService) wrapRepoError(err error, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
}

// notificationsEnabled requires a working delivery channel and the user's push setting.
// Users without a stored profile get the default settings.
func (s *reminderService) notificationsEnabled(ctx context.Context, userID string) bool {
	if !s.scheduler.Init(ctx) {
		return false
	}
	user, err := s.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.NewUser(userID, s.now()).PushOn
		}
		s.log.Error(fmt.Sprintf("Failed to load settings for user %s", userID), err)
		return false
	}
	return user.PushOn
}

// schedule requests a notification at the reminder's due date and returns its id,
// or nil when notifications are off or scheduling failed.
func (s *reminderService) schedule(ctx context.Context, reminder *entity.Reminder, n Notification) *string {
	if !s.notificationsEnabled(ctx, reminder.UserID) {
		return nil
	}
	n.FireAt = reminder.DueAt
	n.Data = map[string]string{
		dataReminderID: reminder.ID,
		dataUserID:     reminder.UserID,
	}
	id, err := s.scheduler.ScheduleOneShot(ctx, n)
	if err != nil {
		s.log.Warn(fmt.Sprintf("Reminder %s saved without notification: %v", reminder.ID, err))
		return nil
	}
	return id
}

// restore reschedules a reminder whose new state could not be saved. It runs
// after the reminder's notification was cancelled, so the stored record is
// pointed at the replacement. Reminders without a notification are left alone.
func (s *reminderService) restore(ctx context.Context, previous *entity.Reminder) {
	if previous.ScheduledNotificationID == nil {
		return
	}
	previous.ScheduledNotificationID = s.schedule(ctx, previous, defaultNotification(previous))
	if err := s.reminderRepo.Update(ctx, previous); err != nil {
		s.log.Error(fmt.Sprintf("Failed to save restored notification for reminder %s", previous.ID), err)
		return
	}
	s.log.Warn(fmt.Sprintf("Restored notification for reminder %s at %v", previous.ID, previous.DueAt))
}

func (s *reminderService) cancel(ctx context.Context, id *string) {
	if id == nil {
		return
	}
	if err := s.scheduler.CancelNotification(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to cancel notification %s", *id), fmt.Errorf("%w: %v", appErrors.ErrScheduling, err))
	}
}

// defaultNotification is the "Due <date> • <vehicle>" message used for
// reminders without a service-specific text.
func defaultNotification(r *entity.Reminder) Notification {
	body := "Due " + r.DueAt.Format(displayDateLayout)
	if r.VehicleName != nil && *r.VehicleName != "" {
		body += " • " + *r.VehicleName
	}
	return Notification{Title: r.Title, Body: body}
}

func completionNote(dueDistance *float64) string {
	if dueDistance == nil {
		return "Reminder completed."
	}
	return fmt.Sprintf("Reminder completed. At %s km.", formatDistance(*dueDistance))
}

// formatDistance renders a distance with thousands separators, e.g. 85,000.
func formatDistance(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%v", v)
}
