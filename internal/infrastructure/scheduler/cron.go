package scheduler

import (
	"fmt"
	"sync"
	"time"

	"carcare/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron jobs.
type Scheduler struct {
	cron *cron.Cron
	log  logger.Logger
	mu   sync.Mutex // To protect access to job management
}

// NewScheduler creates and starts a cron scheduler with seconds precision.
func NewScheduler(log logger.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	c.Start()
	log.Info("Cron scheduler started.")
	return &Scheduler{
		cron: c,
		log:  log,
	}
}

// onceSchedule fires a single time at the given instant.
type onceSchedule struct {
	at time.Time
}

// Next implements cron.Schedule. The zero time tells cron the entry never runs again.
func (s onceSchedule) Next(t time.Time) time.Time {
	if t.Before(s.at) {
		return s.at
	}
	return time.Time{}
}

// AddOneShot schedules cmd to run once at the given time.
func (s *Scheduler) AddOneShot(at time.Time, cmd func()) (cron.EntryID, error) {
	if at.IsZero() {
		return 0, fmt.Errorf("failed to add one-shot job: zero fire time")
	}
	if !at.After(time.Now()) {
		return 0, fmt.Errorf("failed to add one-shot job: fire time %s is in the past", at.Format(time.RFC3339))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.cron.Schedule(onceSchedule{at: at}, cron.FuncJob(cmd))
	s.log.Info(fmt.Sprintf("Added one-shot job with ID %d at %s", id, at.Format(time.RFC3339)))
	return id, nil
}

// RemoveJob removes a job from the scheduler by its EntryID.
func (s *Scheduler) RemoveJob(id cron.EntryID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron.Remove(id)
	s.log.Debug(fmt.Sprintf("Removed cron job with ID %d", id))
}

// Stop stops the cron scheduler and waits for running jobs to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	ctx := s.cron.Stop()
	s.mu.Unlock()

	// Running jobs may still call RemoveJob, so wait without holding the lock.
	<-ctx.Done()
	s.log.Info("Cron scheduler stopped.")
}

// GetEntries returns the list of scheduled entries.
func (s *Scheduler) GetEntries() []cron.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entries()
}
