package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"carcare/internal/domain/constant"
	"carcare/internal/domain/entity"
	"carcare/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// MockScheduler is a mock implementation of NotificationScheduler.
type MockScheduler struct {
	mock.Mock
	handler DeliveryHandler
}

func (m *MockScheduler) Init(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockScheduler) ScheduleOneShot(ctx context.Context, n Notification) (*string, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockScheduler) CancelNotification(ctx context.Context, id *string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduler) SetDeliveryHandler(handler DeliveryHandler) {
	m.handler = handler
}

func (m *MockScheduler) Stop() {
	m.Called()
}

// MockPusher is a mock implementation of Pusher.
type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) PushText(ctx context.Context, to, text string) error {
	args := m.Called(ctx, to, text)
	return args.Error(0)
}

// MockPhotoStore is a mock implementation of PhotoStore.
type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) UploadAvatar(ctx context.Context, userID string, file io.Reader) (string, error) {
	args := m.Called(ctx, userID, file)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStore) DeleteAvatar(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s with ID %s: %w", kind, id, repository.ErrNotFound)
}

// memReminderRepo is an in-memory ReminderRepository. It stores copies so
// callers cannot mutate persisted state without calling Update.
type memReminderRepo struct {
	mu        sync.Mutex
	reminders map[string]entity.Reminder
	history   *memHistoryRepo
	failWrite error
	// failOnce clears failWrite after the first write it rejects.
	failOnce bool
}

func newMemReminderRepo(history *memHistoryRepo) *memReminderRepo {
	return &memReminderRepo{reminders: map[string]entity.Reminder{}, history: history}
}

func (r *memReminderRepo) FindByID(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rem, ok := r.reminders[id]
	if !ok || rem.UserID != userID {
		return nil, notFound("reminder", id)
	}
	return &rem, nil
}

func (r *memReminderRepo) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	return r.filter(func(rem entity.Reminder) bool { return rem.UserID == userID }), nil
}

func (r *memReminderRepo) FindPending(ctx context.Context) ([]*entity.Reminder, error) {
	return r.filter(func(rem entity.Reminder) bool { return rem.Status == constant.ReminderPending }), nil
}

func (r *memReminderRepo) filter(keep func(entity.Reminder) bool) []*entity.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Reminder
	for _, rem := range r.reminders {
		if keep(rem) {
			rem := rem
			out = append(out, &rem)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out
}

func (r *memReminderRepo) Create(ctx context.Context, reminder *entity.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writeErr(); err != nil {
		return err
	}
	r.reminders[reminder.ID] = *reminder
	return nil
}

func (r *memReminderRepo) Update(ctx context.Context, reminder *entity.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writeErr(); err != nil {
		return err
	}
	if existing, ok := r.reminders[reminder.ID]; !ok || existing.UserID != reminder.UserID {
		return notFound("reminder", reminder.ID)
	}
	r.reminders[reminder.ID] = *reminder
	return nil
}

// writeErr must be called with mu held.
func (r *memReminderRepo) writeErr() error {
	err := r.failWrite
	if r.failOnce {
		r.failWrite = nil
	}
	return err
}

func (r *memReminderRepo) Complete(ctx context.Context, reminder *entity.Reminder, entry *entity.History) error {
	if err := r.Update(ctx, reminder); err != nil {
		return err
	}
	return r.history.Create(ctx, entry)
}

func (r *memReminderRepo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rem, ok := r.reminders[id]; ok && rem.UserID == userID {
		delete(r.reminders, id)
	}
	return nil
}

func (r *memReminderRepo) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, rem := range r.reminders {
		if rem.UserID == userID {
			delete(r.reminders, id)
		}
	}
	return nil
}

type memHistoryRepo struct {
	mu      sync.Mutex
	entries []entity.History
}

func (r *memHistoryRepo) Create(ctx context.Context, entry *entity.History) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memHistoryRepo) FindByUserID(ctx context.Context, userID string) ([]*entity.History, error) {
	return r.filter(func(h entity.History) bool { return h.UserID == userID }), nil
}

func (r *memHistoryRepo) FindByVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.History, error) {
	return r.filter(func(h entity.History) bool {
		return h.UserID == userID && h.VehicleID != nil && *h.VehicleID == vehicleID
	}), nil
}

func (r *memHistoryRepo) filter(keep func(entity.History) bool) []*entity.History {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.History
	for _, h := range r.entries {
		if keep(h) {
			h := h
			out = append(out, &h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out
}

func (r *memHistoryRepo) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, h := range r.entries {
		if h.UserID != userID {
			kept = append(kept, h)
		}
	}
	r.entries = kept
	return nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (r *memUserRepo) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, notFound("user", userID)
	}
	return &u, nil
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return notFound("user", user.ID)
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

type memVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[string]entity.Vehicle
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{vehicles: map[string]entity.Vehicle{}}
}

func (r *memVehicleRepo) FindByID(ctx context.Context, userID, id string) (*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok || v.UserID != userID {
		return nil, notFound("vehicle", id)
	}
	return &v, nil
}

func (r *memVehicleRepo) FindByUserID(ctx context.Context, userID string) ([]*entity.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Vehicle
	for _, v := range r.vehicles {
		if v.UserID == userID {
			v := v
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *memVehicleRepo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.vehicles[id]; ok && v.UserID == userID {
		delete(r.vehicles, id)
	}
	return nil
}

func (r *memVehicleRepo) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, v := range r.vehicles {
		if v.UserID == userID {
			delete(r.vehicles, id)
		}
	}
	return nil
}

type memServiceRepo struct {
	mu       sync.Mutex
	services map[string]entity.Service
	history  *memHistoryRepo
}

func newMemServiceRepo(history *memHistoryRepo) *memServiceRepo {
	return &memServiceRepo{services: map[string]entity.Service{}, history: history}
}

func (r *memServiceRepo) FindByID(ctx context.Context, userID, vehicleID, id string) (*entity.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok || s.UserID != userID || s.VehicleID != vehicleID {
		return nil, notFound("service", id)
	}
	return &s, nil
}

func (r *memServiceRepo) FindByVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Service
	for _, s := range r.services {
		if s.UserID == userID && s.VehicleID == vehicleID {
			s := s
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *memServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[service.ID] = *service
	return nil
}

func (r *memServiceRepo) CompleteWithHistory(ctx context.Context, service *entity.Service, entry *entity.History) error {
	if err := r.history.Create(ctx, entry); err != nil {
		return err
	}
	return r.Delete(ctx, service.UserID, service.VehicleID, service.ID)
}

func (r *memServiceRepo) Delete(ctx context.Context, userID, vehicleID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.services[id]; ok && s.UserID == userID && s.VehicleID == vehicleID {
		delete(r.services, id)
	}
	return nil
}

func (r *memServiceRepo) DeleteByVehicle(ctx context.Context, userID, vehicleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.services {
		if s.UserID == userID && s.VehicleID == vehicleID {
			delete(r.services, id)
		}
	}
	return nil
}

func (r *memServiceRepo) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.services {
		if s.UserID == userID {
			delete(r.services, id)
		}
	}
	return nil
}
