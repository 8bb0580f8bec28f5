package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"carcare/internal/application/dto"
	"carcare/internal/domain/constant"
	"carcare/internal/domain/entity"
	appErrors "carcare/internal/pkg/errors"
	"carcare/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderFixture struct {
	svc       *reminderService
	reminders *memReminderRepo
	history   *memHistoryRepo
	users     *memUserRepo
	sched     *MockScheduler
	pusher    *MockPusher
}

func newReminderFixture(t *testing.T, notificationsOn bool) *reminderFixture {
	t.Helper()
	history := &memHistoryRepo{}
	f := &reminderFixture{
		reminders: newMemReminderRepo(history),
		history:   history,
		users:     newMemUserRepo(),
		sched:     new(MockScheduler),
		pusher:    new(MockPusher),
	}
	f.sched.On("Init", mock.Anything).Return(notificationsOn).Maybe()
	f.svc = NewReminderService(f.reminders, f.users, f.sched, f.pusher, logger.Discard()).(*reminderService)
	f.svc.now = fixedNow
	return f
}

func (f *reminderFixture) seed(t *testing.T, r entity.Reminder) {
	t.Helper()
	if r.UserID == "" {
		r.UserID = "U1"
	}
	if r.Status == "" {
		r.Status = constant.ReminderPending
	}
	require.NoError(t, f.reminders.Create(context.Background(), &r))
}

func (f *reminderFixture) stored(t *testing.T, id string) *entity.Reminder {
	t.Helper()
	r, err := f.reminders.FindByID(context.Background(), "U1", id)
	require.NoError(t, err)
	return r
}

func fireAt(at time.Time) interface{} {
	return mock.MatchedBy(func(n Notification) bool { return n.FireAt.Equal(at) })
}

func TestNewReminderService_RegistersDeliveryHandler(t *testing.T) {
	f := newReminderFixture(t, true)
	assert.NotNil(t, f.sched.handler)

	sched := new(MockScheduler)
	NewReminderService(newMemReminderRepo(&memHistoryRepo{}), newMemUserRepo(), sched, nil, logger.Discard())
	assert.Nil(t, sched.handler)
}

func TestReminderService_CreateSchedulesNotification(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, true)
	due := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	f.sched.On("ScheduleOneShot", mock.Anything, mock.MatchedBy(func(n Notification) bool {
		return n.FireAt.Equal(due) &&
			n.Title == "Engine Oil service" &&
			n.Body == "Due on Jan 10, 2025 at 85,000 km" &&
			n.Data[dataUserID] == "U1" && n.Data[dataReminderID] != ""
	})).Return(strPtr("n1"), nil).Once()

	r, err := f.svc.Create(ctx, dto.CreateReminderRequest{
		UserID:            "U1",
		Title:             "  Engine Oil ",
		Kind:              constant.KindService,
		DueAt:             due,
		DueDistance:       floatPtr(85000),
		NotificationTitle: "Engine Oil service",
		NotificationBody:  "Due on Jan 10, 2025 at 85,000 km",
	})
	require.NoError(t, err)
	assert.Equal(t, "Engine Oil", r.Title)
	assert.Equal(t, constant.ReminderPending, r.Status)
	require.NotNil(t, r.ScheduledNotificationID)
	assert.Equal(t, "n1", *r.ScheduledNotificationID)
	assert.Equal(t, testNow, r.CreatedAt)

	stored := f.stored(t, r.ID)
	assert.Equal(t, "n1", *stored.ScheduledNotificationID)
	f.sched.AssertExpectations(t)
}

func TestReminderService_CreateSurvivesSchedulingFailure(t *testing.T) {
	f := newReminderFixture(t, true)
	f.sched.On("ScheduleOneShot", mock.Anything, mock.Anything).Return(nil, appErrors.ErrScheduling).Once()

	r, err := f.svc.Create(context.Background(), dto.CreateReminderRequest{UserID: "U1", Title: "Coolant", DueAt: testNow.Add(time.Hour)})
	require.NoError(t, err)
	assert.Nil(t, r.ScheduledNotificationID)
	assert.Equal(t, constant.KindQuick, r.Kind)
	assert.Nil(t, f.stored(t, r.ID).ScheduledNotificationID)
}

func TestReminderService_CreateWithoutNotifications(t *testing.T) {
	t.Run("channel disabled", func(t *testing.T) {
		f := newReminderFixture(t, false)
		r, err := f.svc.Create(context.Background(), dto.CreateReminderRequest{UserID: "U1", Title: "Coolant", DueAt: testNow.Add(time.Hour)})
		require.NoError(t, err)
		assert.Nil(t, r.ScheduledNotificationID)
		f.sched.AssertNotCalled(t, "ScheduleOneShot", mock.Anything, mock.Anything)
	})

	t.Run("push turned off by user", func(t *testing.T) {
		f := newReminderFixture(t, true)
		u := entity.NewUser("U1", testNow)
		u.PushOn = false
		require.NoError(t, f.users.Create(context.Background(), u))

		r, err := f.svc.Create(context.Background(), dto.CreateReminderRequest{UserID: "U1", Title: "Coolant", DueAt: testNow.Add(time.Hour)})
		require.NoError(t, err)
		assert.Nil(t, r.ScheduledNotificationID)
		f.sched.AssertNotCalled(t, "ScheduleOneShot", mock.Anything, mock.Anything)
	})
}

func TestReminderService_CreateValidation(t *testing.T) {
	f := newReminderFixture(t, false)
	_, err := f.svc.Create(context.Background(), dto.CreateReminderRequest{UserID: "U1", Title: "  ", DueAt: testNow})
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)
	_, err = f.svc.Create(context.Background(), dto.CreateReminderRequest{UserID: "U1", Title: "Coolant"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)
}

func TestReminderService_CreatePersistFailureCancelsNotification(t *testing.T) {
	f := newReminderFixture(t, true)
	f.reminders.failWrite = errors.New("disk full")
	f.sched.On("ScheduleOneShot", mock.Anything, mock.Anything).Return(strPtr("n1"), nil).Once()
	f.sched.On("CancelNotification", mock.Anything, strPtr("n1")).Return(nil).Once()

	_, err := f.svc.Create(context.Background(), dto.CreateReminderRequest{UserID: "U1", Title: "Coolant", DueAt: testNow.Add(time.Hour)})
	assert.ErrorIs(t, err, appErrors.ErrDatabaseOperation)
	f.sched.AssertExpectations(t)
}

func TestReminderService_QuickAdd(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, false)

	r, err := f.svc.QuickAdd(ctx, dto.QuickAddReminderRequest{UserID: "U1", Title: " Tire rotation ", VehicleName: strPtr("  "), DueInDays: 7, DueDistance: floatPtr(42000)})
	require.NoError(t, err)
	assert.Equal(t, "Tire rotation", r.Title)
	assert.Equal(t, constant.KindQuick, r.Kind)
	assert.Nil(t, r.VehicleName)
	assert.True(t, r.DueAt.Equal(testNow.AddDate(0, 0, 7)))
	assert.Equal(t, 42000.0, *r.DueDistance)

	r, err = f.svc.QuickAdd(ctx, dto.QuickAddReminderRequest{UserID: "U1", Title: "Wash", VehicleName: strPtr(" Daily "), DueInDays: -3})
	require.NoError(t, err)
	assert.True(t, r.DueAt.Equal(testNow))
	assert.Equal(t, "Daily", *r.VehicleName)

	_, err = f.svc.QuickAdd(ctx, dto.QuickAddReminderRequest{UserID: "U1", Title: ""})
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)
	_, err = f.svc.QuickAdd(ctx, dto.QuickAddReminderRequest{UserID: "U1", Title: "Oil", DueDistance: floatPtr(-1)})
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)
}

func TestReminderService_SnoozeCancelsThenReschedules(t *testing.T) {
	f := newReminderFixture(t, true)
	due := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Engine Oil", DueAt: due, ScheduledNotificationID: strPtr("old")})

	var calls []string
	f.sched.On("CancelNotification", mock.Anything, strPtr("old")).Return(nil).Once().
		Run(func(mock.Arguments) { calls = append(calls, "cancel") })
	f.sched.On("ScheduleOneShot", mock.Anything, fireAt(time.Date(2024, time.June, 8, 9, 0, 0, 0, time.UTC))).Return(strPtr("new"), nil).Once().
		Run(func(mock.Arguments) { calls = append(calls, "schedule") })

	got, err := f.svc.Snooze(context.Background(), dto.SnoozeRequest{UserID: "U1", ReminderID: "r1", Days: constant.SnoozeDaysUpcoming})
	require.NoError(t, err)
	assert.True(t, got.DueAt.Equal(time.Date(2024, time.June, 8, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "new", *got.ScheduledNotificationID)
	assert.Equal(t, []string{"cancel", "schedule"}, calls)

	stored := f.stored(t, "r1")
	assert.True(t, stored.DueAt.Equal(got.DueAt))
	assert.Equal(t, "new", *stored.ScheduledNotificationID)
	f.sched.AssertNumberOfCalls(t, "CancelNotification", 1)
	f.sched.AssertExpectations(t)
}

func TestReminderService_SnoozeSaveFailureRestoresNotification(t *testing.T) {
	f := newReminderFixture(t, true)
	due := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Engine Oil", DueAt: due, ScheduledNotificationID: strPtr("live")})
	f.reminders.failWrite = errors.New("disk full")
	f.reminders.failOnce = true

	f.sched.On("CancelNotification", mock.Anything, strPtr("live")).Return(nil).Once()
	f.sched.On("ScheduleOneShot", mock.Anything, fireAt(due.AddDate(0, 0, 7))).Return(strPtr("new"), nil).Once()
	f.sched.On("CancelNotification", mock.Anything, strPtr("new")).Return(nil).Once()
	f.sched.On("ScheduleOneShot", mock.Anything, fireAt(due)).Return(strPtr("restored"), nil).Once()

	_, err := f.svc.Snooze(context.Background(), dto.SnoozeRequest{UserID: "U1", ReminderID: "r1", Days: 7})
	assert.ErrorIs(t, err, appErrors.ErrDatabaseOperation)

	stored := f.stored(t, "r1")
	assert.True(t, stored.DueAt.Equal(due))
	require.NotNil(t, stored.ScheduledNotificationID)
	assert.Equal(t, "restored", *stored.ScheduledNotificationID)
	f.sched.AssertExpectations(t)
}

func TestReminderService_SnoozeSaveFailureWithoutNotification(t *testing.T) {
	f := newReminderFixture(t, false)
	due := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Coolant", DueAt: due})
	f.reminders.failWrite = errors.New("disk full")

	_, err := f.svc.Snooze(context.Background(), dto.SnoozeRequest{UserID: "U1", ReminderID: "r1", Days: 3})
	assert.ErrorIs(t, err, appErrors.ErrDatabaseOperation)
	assert.True(t, f.stored(t, "r1").DueAt.Equal(due))
	f.sched.AssertNotCalled(t, "ScheduleOneShot", mock.Anything, mock.Anything)
	f.sched.AssertNotCalled(t, "CancelNotification", mock.Anything, mock.Anything)
}

func TestReminderService_SnoozeAdvancesByExactDays(t *testing.T) {
	f := newReminderFixture(t, false)
	due := time.Date(2024, time.March, 30, 18, 30, 0, 0, time.UTC)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Coolant", DueAt: due})

	expected := due
	for days := 1; days <= 10; days++ {
		got, err := f.svc.Snooze(context.Background(), dto.SnoozeRequest{UserID: "U1", ReminderID: "r1", Days: days})
		require.NoError(t, err)
		expected = expected.Add(time.Duration(days) * 24 * time.Hour)
		assert.True(t, got.DueAt.Equal(expected), "after %d days", days)
		assert.Nil(t, got.ScheduledNotificationID)
	}
	f.sched.AssertNotCalled(t, "CancelNotification", mock.Anything, mock.Anything)
}

func TestReminderService_SnoozeRejects(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, false)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Coolant", DueAt: testNow})
	f.seed(t, entity.Reminder{ID: "r2", Title: "Oil", DueAt: testNow, Status: constant.ReminderDone})

	_, err := f.svc.Snooze(ctx, dto.SnoozeRequest{UserID: "U1", ReminderID: "r1", Days: 0})
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)
	_, err = f.svc.Snooze(ctx, dto.SnoozeRequest{UserID: "U1", ReminderID: "r2", Days: 3})
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)
	_, err = f.svc.Snooze(ctx, dto.SnoozeRequest{UserID: "U1", ReminderID: "missing", Days: 3})
	assert.ErrorIs(t, err, appErrors.ErrReminderNotFound)
	_, err = f.svc.Snooze(ctx, dto.SnoozeRequest{UserID: "U2", ReminderID: "r1", Days: 3})
	assert.ErrorIs(t, err, appErrors.ErrReminderNotFound)
}

func TestReminderService_Complete(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, true)
	f.seed(t, entity.Reminder{
		ID:                      "r1",
		Title:                   "Engine Oil",
		VehicleID:               strPtr("v1"),
		VehicleName:             strPtr("Toyota Corolla"),
		DueAt:                   testNow.AddDate(0, 1, 0),
		DueDistance:             floatPtr(85000),
		ScheduledNotificationID: strPtr("n1"),
	})
	f.sched.On("CancelNotification", mock.Anything, strPtr("n1")).Return(nil).Once()

	got, err := f.svc.Complete(ctx, "U1", "r1")
	require.NoError(t, err)
	assert.Equal(t, constant.ReminderDone, got.Status)
	assert.Nil(t, got.ScheduledNotificationID)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, testNow, *got.CompletedAt)

	stored := f.stored(t, "r1")
	assert.Equal(t, constant.ReminderDone, stored.Status)
	assert.Nil(t, stored.ScheduledNotificationID)

	entries, _ := f.history.FindByUserID(ctx, "U1")
	require.Len(t, entries, 1)
	h := entries[0]
	assert.Equal(t, "Engine Oil", h.Name)
	assert.Equal(t, constant.HistoryReminder, h.Kind)
	assert.Equal(t, "Toyota Corolla", *h.VehicleName)
	assert.Equal(t, "r1", *h.OriginReminderID)
	assert.Equal(t, 85000.0, *h.DueDistance)
	assert.Equal(t, "Reminder completed. At 85,000 km.", h.Note)
	assert.Equal(t, testNow, h.CompletedAt)

	_, err = f.svc.Complete(ctx, "U1", "r1")
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)
	entries, _ = f.history.FindByUserID(ctx, "U1")
	assert.Len(t, entries, 1)
	f.sched.AssertNumberOfCalls(t, "CancelNotification", 1)
}

func TestReminderService_CompleteSaveFailureRestoresNotification(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, true)
	due := testNow.AddDate(0, 1, 0)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Engine Oil", DueAt: due, ScheduledNotificationID: strPtr("live")})
	f.reminders.failWrite = errors.New("disk full")
	f.reminders.failOnce = true

	f.sched.On("CancelNotification", mock.Anything, strPtr("live")).Return(nil).Once()
	f.sched.On("ScheduleOneShot", mock.Anything, mock.MatchedBy(func(n Notification) bool {
		return n.FireAt.Equal(due) && n.Data[dataReminderID] == "r1"
	})).Return(strPtr("restored"), nil).Once()

	_, err := f.svc.Complete(ctx, "U1", "r1")
	assert.ErrorIs(t, err, appErrors.ErrDatabaseOperation)

	stored := f.stored(t, "r1")
	assert.Equal(t, constant.ReminderPending, stored.Status)
	assert.Nil(t, stored.CompletedAt)
	require.NotNil(t, stored.ScheduledNotificationID)
	assert.Equal(t, "restored", *stored.ScheduledNotificationID)
	entries, _ := f.history.FindByUserID(ctx, "U1")
	assert.Empty(t, entries)
	f.sched.AssertExpectations(t)
}

func TestReminderService_CompleteSaveFailureKeepsRestoredNotificationLive(t *testing.T) {
	f := newReminderFixture(t, true)
	due := testNow.AddDate(0, 1, 0)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Engine Oil", DueAt: due, ScheduledNotificationID: strPtr("live")})
	f.reminders.failWrite = errors.New("disk full")

	f.sched.On("CancelNotification", mock.Anything, strPtr("live")).Return(nil).Once()
	f.sched.On("ScheduleOneShot", mock.Anything, fireAt(due)).Return(strPtr("restored"), nil).Once()

	_, err := f.svc.Complete(context.Background(), "U1", "r1")
	assert.ErrorIs(t, err, appErrors.ErrDatabaseOperation)
	assert.Equal(t, constant.ReminderPending, f.stored(t, "r1").Status)
	// The replacement is never cancelled, so the pending reminder still alerts.
	f.sched.AssertNumberOfCalls(t, "CancelNotification", 1)
	f.sched.AssertExpectations(t)
}

func TestReminderService_CompleteWithoutDistance(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, false)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Battery replacement", DueAt: testNow})

	_, err := f.svc.Complete(ctx, "U1", "r1")
	require.NoError(t, err)
	entries, _ := f.history.FindByUserID(ctx, "U1")
	require.Len(t, entries, 1)
	assert.Equal(t, "Reminder completed.", entries[0].Note)
	assert.Nil(t, entries[0].DueDistance)
}

func TestReminderService_UndoReschedulesAtExistingDueDate(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, true)
	due := testNow.AddDate(0, 1, 0)
	completed := testNow.Add(-time.Hour)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Coolant", DueAt: due, Status: constant.ReminderDone, CompletedAt: &completed})
	f.sched.On("ScheduleOneShot", mock.Anything, fireAt(due)).Return(strPtr("n2"), nil).Once()

	got, err := f.svc.Undo(ctx, "U1", "r1")
	require.NoError(t, err)
	assert.Equal(t, constant.ReminderPending, got.Status)
	assert.Nil(t, got.CompletedAt)
	assert.True(t, got.DueAt.Equal(due))
	assert.Equal(t, "n2", *got.ScheduledNotificationID)
	assert.Equal(t, constant.ClassUpcoming, got.Classify(testNow))

	_, err = f.svc.Undo(ctx, "U1", "r1")
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)
	f.sched.AssertExpectations(t)
}

func TestReminderService_UndoPastDueLeavesNoNotification(t *testing.T) {
	f := newReminderFixture(t, true)
	completed := testNow
	f.seed(t, entity.Reminder{ID: "r1", Title: "Coolant", DueAt: testNow.AddDate(0, 0, -2), Status: constant.ReminderDone, CompletedAt: &completed})
	f.sched.On("ScheduleOneShot", mock.Anything, mock.Anything).Return(nil, appErrors.ErrScheduling).Once()

	got, err := f.svc.Undo(context.Background(), "U1", "r1")
	require.NoError(t, err)
	assert.Nil(t, got.ScheduledNotificationID)
	assert.Equal(t, constant.ClassOverdue, got.Classify(testNow))
}

func TestReminderService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, true)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Coolant", DueAt: testNow, ScheduledNotificationID: strPtr("n1")})
	f.sched.On("CancelNotification", mock.Anything, strPtr("n1")).Return(nil).Once()

	require.NoError(t, f.svc.Delete(ctx, "U1", "r1"))
	_, err := f.svc.Get(ctx, "U1", "r1")
	assert.ErrorIs(t, err, appErrors.ErrReminderNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, "U1", "r1"), appErrors.ErrReminderNotFound)
	f.sched.AssertExpectations(t)
}

func TestReminderService_ListClassifies(t *testing.T) {
	f := newReminderFixture(t, false)
	f.seed(t, entity.Reminder{ID: "later", Title: "Coolant", DueAt: testNow.AddDate(0, 2, 0)})
	f.seed(t, entity.Reminder{ID: "soon", Title: "Oil", DueAt: testNow.AddDate(0, 0, 3)})
	f.seed(t, entity.Reminder{ID: "late", Title: "Brakes", DueAt: testNow.AddDate(0, 0, -1)})
	f.seed(t, entity.Reminder{ID: "done", Title: "Wash", DueAt: testNow.AddDate(0, 0, -5), Status: constant.ReminderDone})
	f.seed(t, entity.Reminder{ID: "other", UserID: "U2", Title: "Lights", DueAt: testNow})

	board, err := f.svc.List(context.Background(), "U1")
	require.NoError(t, err)
	require.Len(t, board.Upcoming, 2)
	assert.Equal(t, "soon", board.Upcoming[0].ID)
	assert.Equal(t, "later", board.Upcoming[1].ID)
	require.Len(t, board.Overdue, 1)
	assert.Equal(t, "late", board.Overdue[0].ID)
	require.Len(t, board.Completed, 1)
	assert.Equal(t, constant.ClassCompleted, board.Completed[0].Classification)
}

func TestReminderService_HandleDueNotification(t *testing.T) {
	ctx := context.Background()
	n := Notification{
		Title: "Engine Oil service",
		Body:  "Due on Jun 1, 2024 at 85,000 km",
		Data:  map[string]string{dataUserID: "U1", dataReminderID: "r1"},
	}

	t.Run("delivers live notification", func(t *testing.T) {
		f := newReminderFixture(t, true)
		f.seed(t, entity.Reminder{ID: "r1", Title: "Engine Oil", DueAt: testNow, ScheduledNotificationID: strPtr("n1")})
		f.pusher.On("PushText", mock.Anything, "U1", "Engine Oil service\nDue on Jun 1, 2024 at 85,000 km").Return(nil).Once()

		require.NoError(t, f.svc.HandleDueNotification(ctx, "n1", n))
		assert.Nil(t, f.stored(t, "r1").ScheduledNotificationID)
		f.pusher.AssertExpectations(t)
	})

	t.Run("skips superseded notification", func(t *testing.T) {
		f := newReminderFixture(t, true)
		f.seed(t, entity.Reminder{ID: "r1", Title: "Engine Oil", DueAt: testNow, ScheduledNotificationID: strPtr("n2")})

		require.NoError(t, f.svc.HandleDueNotification(ctx, "n1", n))
		assert.Equal(t, "n2", *f.stored(t, "r1").ScheduledNotificationID)
		f.pusher.AssertNotCalled(t, "PushText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skips completed reminder", func(t *testing.T) {
		f := newReminderFixture(t, true)
		f.seed(t, entity.Reminder{ID: "r1", Title: "Engine Oil", DueAt: testNow, Status: constant.ReminderDone})

		require.NoError(t, f.svc.HandleDueNotification(ctx, "n1", n))
		f.pusher.AssertNotCalled(t, "PushText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ignores deleted reminder", func(t *testing.T) {
		f := newReminderFixture(t, true)
		require.NoError(t, f.svc.HandleDueNotification(ctx, "n1", n))
	})

	t.Run("push failure still clears the id", func(t *testing.T) {
		f := newReminderFixture(t, true)
		f.seed(t, entity.Reminder{ID: "r1", Title: "Engine Oil", DueAt: testNow, ScheduledNotificationID: strPtr("n1")})
		f.pusher.On("PushText", mock.Anything, "U1", mock.Anything).Return(errors.New("429")).Once()

		err := f.svc.HandleDueNotification(ctx, "n1", n)
		assert.ErrorIs(t, err, appErrors.ErrLineAPI)
		assert.Nil(t, f.stored(t, "r1").ScheduledNotificationID)
	})
}

func TestReminderService_InitializeSchedules(t *testing.T) {
	f := newReminderFixture(t, true)
	future := testNow.AddDate(0, 0, 10)
	f.seed(t, entity.Reminder{ID: "future", Title: "Coolant", DueAt: future, ScheduledNotificationID: strPtr("stale-1")})
	f.seed(t, entity.Reminder{ID: "past", Title: "Oil", DueAt: testNow.AddDate(0, 0, -1), ScheduledNotificationID: strPtr("stale-2")})
	f.seed(t, entity.Reminder{ID: "done", Title: "Wash", DueAt: future, Status: constant.ReminderDone})
	f.sched.On("ScheduleOneShot", mock.Anything, fireAt(future)).Return(strPtr("fresh"), nil).Once()

	require.NoError(t, f.svc.InitializeSchedules(context.Background()))
	assert.Equal(t, "fresh", *f.stored(t, "future").ScheduledNotificationID)
	assert.Nil(t, f.stored(t, "past").ScheduledNotificationID)
	assert.Nil(t, f.stored(t, "done").ScheduledNotificationID)
	f.sched.AssertExpectations(t)
}

func TestReminderService_DeleteAllForUser(t *testing.T) {
	ctx := context.Background()
	f := newReminderFixture(t, true)
	f.seed(t, entity.Reminder{ID: "r1", Title: "Coolant", DueAt: testNow, ScheduledNotificationID: strPtr("n1")})
	f.seed(t, entity.Reminder{ID: "r2", Title: "Oil", DueAt: testNow})
	f.seed(t, entity.Reminder{ID: "r3", UserID: "U2", Title: "Lights", DueAt: testNow})
	f.sched.On("CancelNotification", mock.Anything, strPtr("n1")).Return(nil).Once()

	require.NoError(t, f.svc.DeleteAllForUser(ctx, "U1"))
	mine, _ := f.reminders.FindByUserID(ctx, "U1")
	assert.Empty(t, mine)
	theirs, _ := f.reminders.FindByUserID(ctx, "U2")
	assert.Len(t, theirs, 1)
	f.sched.AssertExpectations(t)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0", formatDistance(0))
	assert.Equal(t, "999", formatDistance(999))
	assert.Equal(t, "85,000", formatDistance(85000))
	assert.Equal(t, "1,234,567.5", formatDistance(1234567.5))
}
