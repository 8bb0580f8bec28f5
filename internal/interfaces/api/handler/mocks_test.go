package handler

import (
	"context"
	"io"
	"net/http"

	"carcare/internal/application/dto"
	"carcare/internal/application/service"
	"carcare/internal/domain/catalog"
	"carcare/internal/domain/entity"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/stretchr/testify/mock"
)

type MockReminderService struct{ mock.Mock }

func (m *MockReminderService) Create(ctx context.Context, req dto.CreateReminderRequest) (*entity.Reminder, error) {
	args := m.Called(ctx, req)
	return reminderArg(args, 0), args.Error(1)
}

func (m *MockReminderService) QuickAdd(ctx context.Context, req dto.QuickAddReminderRequest) (*entity.Reminder, error) {
	args := m.Called(ctx, req)
	return reminderArg(args, 0), args.Error(1)
}

func (m *MockReminderService) Snooze(ctx context.Context, req dto.SnoozeRequest) (*entity.Reminder, error) {
	args := m.Called(ctx, req)
	return reminderArg(args, 0), args.Error(1)
}

func (m *MockReminderService) Complete(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	args := m.Called(ctx, userID, reminderID)
	return reminderArg(args, 0), args.Error(1)
}

func (m *MockReminderService) Undo(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	args := m.Called(ctx, userID, reminderID)
	return reminderArg(args, 0), args.Error(1)
}

func (m *MockReminderService) Delete(ctx context.Context, userID, reminderID string) error {
	return m.Called(ctx, userID, reminderID).Error(0)
}

func (m *MockReminderService) List(ctx context.Context, userID string) (*dto.ReminderBoard, error) {
	args := m.Called(ctx, userID)
	board, _ := args.Get(0).(*dto.ReminderBoard)
	return board, args.Error(1)
}

func (m *MockReminderService) Get(ctx context.Context, userID, reminderID string) (*entity.Reminder, error) {
	args := m.Called(ctx, userID, reminderID)
	return reminderArg(args, 0), args.Error(1)
}

func (m *MockReminderService) HandleDueNotification(ctx context.Context, notificationID string, n service.Notification) error {
	return m.Called(ctx, notificationID, n).Error(0)
}

func (m *MockReminderService) InitializeSchedules(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockReminderService) DeleteAllForUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func reminderArg(args mock.Arguments, i int) *entity.Reminder {
	r, _ := args.Get(i).(*entity.Reminder)
	return r
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) GetOrCreateUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*entity.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserService) UploadAvatar(ctx context.Context, userID, filename string, file io.Reader) (*entity.User, error) {
	args := m.Called(ctx, userID, filename, file)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockVehicleService struct{ mock.Mock }

func (m *MockVehicleService) Register(ctx context.Context, req dto.RegisterVehicleRequest) (*entity.Vehicle, error) {
	args := m.Called(ctx, req)
	v, _ := args.Get(0).(*entity.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleService) List(ctx context.Context, userID string) ([]*entity.Vehicle, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]*entity.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleService) Get(ctx context.Context, userID, vehicleID string) (*entity.Vehicle, error) {
	args := m.Called(ctx, userID, vehicleID)
	v, _ := args.Get(0).(*entity.Vehicle)
	return v, args.Error(1)
}

func (m *MockVehicleService) Delete(ctx context.Context, userID, vehicleID string) error {
	return m.Called(ctx, userID, vehicleID).Error(0)
}

type MockMaintenanceService struct{ mock.Mock }

func (m *MockMaintenanceService) Catalog() []catalog.Entry {
	return m.Called().Get(0).([]catalog.Entry)
}

func (m *MockMaintenanceService) Preview(req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*dto.PreviewResponse)
	return resp, args.Error(1)
}

func (m *MockMaintenanceService) Record(ctx context.Context, req dto.RecordServiceRequest) (*entity.Service, *entity.Reminder, error) {
	args := m.Called(ctx, req)
	svc, _ := args.Get(0).(*entity.Service)
	return svc, reminderArg(args, 1), args.Error(2)
}

func (m *MockMaintenanceService) ListByVehicle(ctx context.Context, userID, vehicleID string) (*dto.ServiceListResponse, error) {
	args := m.Called(ctx, userID, vehicleID)
	resp, _ := args.Get(0).(*dto.ServiceListResponse)
	return resp, args.Error(1)
}

func (m *MockMaintenanceService) Complete(ctx context.Context, userID, vehicleID, serviceID string) error {
	return m.Called(ctx, userID, vehicleID, serviceID).Error(0)
}

func (m *MockMaintenanceService) Delete(ctx context.Context, userID, vehicleID, serviceID string) error {
	return m.Called(ctx, userID, vehicleID, serviceID).Error(0)
}

type MockHistoryService struct{ mock.Mock }

func (m *MockHistoryService) ListForUser(ctx context.Context, userID string) ([]*entity.History, error) {
	args := m.Called(ctx, userID)
	h, _ := args.Get(0).([]*entity.History)
	return h, args.Error(1)
}

func (m *MockHistoryService) ListForVehicle(ctx context.Context, userID, vehicleID string) ([]*entity.History, error) {
	args := m.Called(ctx, userID, vehicleID)
	h, _ := args.Get(0).([]*entity.History)
	return h, args.Error(1)
}

type MockLineMessenger struct {
	mock.Mock
	sent [][]linebot.SendingMessage
}

func (m *MockLineMessenger) ParseRequest(r *http.Request) ([]*linebot.Event, error) {
	args := m.Called(r)
	events, _ := args.Get(0).([]*linebot.Event)
	return events, args.Error(1)
}

func (m *MockLineMessenger) SendMessages(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error {
	m.sent = append(m.sent, messages)
	return m.Called(ctx, replyToken).Error(0)
}

func (m *MockLineMessenger) PushText(ctx context.Context, to, text string) error {
	return m.Called(ctx, to, text).Error(0)
}
