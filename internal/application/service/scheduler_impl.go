package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carcare/internal/infrastructure/scheduler"
	appErrors "carcare/internal/pkg/errors"
	"carcare/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

type notificationScheduler struct {
	cronScheduler *scheduler.Scheduler
	deliver       DeliveryHandler
	log           logger.Logger
	// jobStore maps notification ids to cron entries.
	jobStore map[string]cron.EntryID
	mu       sync.Mutex
}

// NewNotificationScheduler creates a NotificationScheduler on top of the cron scheduler.
// Notifications stay disabled until a delivery handler is set.
func NewNotificationScheduler(cronScheduler *scheduler.Scheduler, log logger.Logger) NotificationScheduler {
	return &notificationScheduler{
		cronScheduler: cronScheduler,
		log:           log,
		jobStore:      make(map[string]cron.EntryID),
	}
}

func (s *notificationScheduler) SetDeliveryHandler(handler DeliveryHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliver = handler
}

func (s *notificationScheduler) Init(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cronScheduler != nil && s.deliver != nil
}

func (s *notificationScheduler) ScheduleOneShot(ctx context.Context, n Notification) (*string, error) {
	if !s.Init(ctx) {
		return nil, nil
	}
	if n.FireAt.IsZero() || !n.FireAt.After(time.Now()) {
		s.log.Warn(fmt.Sprintf("Attempted to schedule notification %q with invalid or past time: %v", n.Title, n.FireAt))
		return nil, fmt.Errorf("%w: cannot schedule notification with past or zero time", appErrors.ErrScheduling)
	}

	id := uuid.NewString()
	jobFunc := func() {
		s.log.Info(fmt.Sprintf("Executing notification job %s", id))
		entryID, ok := s.removeJobID(id)
		if ok {
			s.cronScheduler.RemoveJob(entryID)
		}

		s.mu.Lock()
		deliver := s.deliver
		s.mu.Unlock()
		if deliver == nil {
			return
		}
		if err := deliver(context.Background(), id, n); err != nil {
			s.log.Error(fmt.Sprintf("Error delivering notification %s", id), err)
		}
	}

	// Hold the lock across scheduling so a job firing immediately finds its entry.
	s.mu.Lock()
	defer s.mu.Unlock()
	entryID, err := s.cronScheduler.AddOneShot(n.FireAt, jobFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.jobStore[id] = entryID
	s.log.Debug(fmt.Sprintf("Stored job ID %d for notification %s at %v", entryID, id, n.FireAt))
	return &id, nil
}

func (s *notificationScheduler) CancelNotification(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	entryID, ok := s.removeJobID(*id)
	if !ok {
		s.log.Debug(fmt.Sprintf("No scheduled job found for notification %s", *id))
		return nil
	}
	s.cronScheduler.RemoveJob(entryID)
	s.log.Info(fmt.Sprintf("Cancelled notification %s", *id))
	return nil
}

// removeJobID removes and returns the cron EntryID of a notification.
func (s *notificationScheduler) removeJobID(id string) (cron.EntryID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entryID, ok := s.jobStore[id]
	if ok {
		delete(s.jobStore, id)
	}
	return entryID, ok
}

func (s *notificationScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}
