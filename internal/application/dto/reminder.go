package dto

import (
	"time"

	"carcare/internal/domain/constant"
	"carcare/internal/domain/entity"
)

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Kind           constant.ReminderKind   `json:"kind"`
	VehicleID      *string                 `json:"vehicle_id,omitempty"`
	VehicleName    *string                 `json:"vehicle_name,omitempty"`
	ServiceID      *string                 `json:"service_id,omitempty"`
	DueAt          time.Time               `json:"due_at"`
	DueDistance    *float64                `json:"due_distance,omitempty"`
	Status         constant.ReminderStatus `json:"status"`
	Classification constant.Classification `json:"classification"`
	Scheduled      bool                    `json:"scheduled"`
	CreatedAt      time.Time               `json:"created_at"`
	CompletedAt    *time.Time              `json:"completed_at,omitempty"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO,
// classifying it at the given instant.
func ToReminderResponse(r *entity.Reminder, now time.Time) ReminderResponse {
	return ReminderResponse{
		ID:             r.ID,
		Title:          r.Title,
		Kind:           r.Kind,
		VehicleID:      r.VehicleID,
		VehicleName:    r.VehicleName,
		ServiceID:      r.ServiceID,
		DueAt:          r.DueAt,
		DueDistance:    r.DueDistance,
		Status:         r.Status,
		Classification: r.Classify(now),
		Scheduled:      r.ScheduledNotificationID != nil,
		CreatedAt:      r.CreatedAt,
		CompletedAt:    r.CompletedAt,
	}
}

// ReminderBoard groups a user's reminders by classification, each list
// ordered by due date.
type ReminderBoard struct {
	Upcoming  []ReminderResponse `json:"upcoming"`
	Overdue   []ReminderResponse `json:"overdue"`
	Completed []ReminderResponse `json:"completed"`
}

// NewReminderBoard classifies reminders (already sorted by due date) at now.
func NewReminderBoard(reminders []*entity.Reminder, now time.Time) ReminderBoard {
	board := ReminderBoard{
		Upcoming:  []ReminderResponse{},
		Overdue:   []ReminderResponse{},
		Completed: []ReminderResponse{},
	}
	for _, r := range reminders {
		resp := ToReminderResponse(r, now)
		switch resp.Classification {
		case constant.ClassCompleted:
			board.Completed = append(board.Completed, resp)
		case constant.ClassOverdue:
			board.Overdue = append(board.Overdue, resp)
		default:
			board.Upcoming = append(board.Upcoming, resp)
		}
	}
	return board
}

// CreateReminderRequest is the DTO for creating a reminder from a computed due.
// NotificationTitle and NotificationBody default to the title and a "Due ..." line.
type CreateReminderRequest struct {
	UserID            string
	Title             string
	Kind              constant.ReminderKind
	VehicleID         *string
	VehicleName       *string
	ServiceID         *string
	DueAt             time.Time
	DueDistance       *float64
	NotificationTitle string
	NotificationBody  string
}

// QuickAddReminderRequest is the DTO for adding a reminder by hand.
type QuickAddReminderRequest struct {
	UserID      string   `json:"-"`
	Title       string   `json:"title"`
	VehicleName *string  `json:"vehicle_name"`
	DueInDays   int      `json:"due_in_days"`
	DueDistance *float64 `json:"due_distance"`
}

// SnoozeRequest is the DTO for snoozing a reminder.
type SnoozeRequest struct {
	UserID     string `json:"-"`
	ReminderID string `json:"-"`
	Days       int    `json:"days"`
}
