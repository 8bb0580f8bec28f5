package handler

import (
	"net/http"
	"time"

	"carcare/internal/application/dto"
	"carcare/internal/application/service"
	"carcare/internal/domain/constant"
	"carcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReminderHandler serves the reminders list and its actions.
type ReminderHandler struct {
	reminderService service.ReminderService
	log             logger.Logger
	now             func() time.Time
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		log:             log,
		now:             time.Now,
	}
}

// snoozeBody accepts either an explicit day count or the list the user
// snoozed from.
type snoozeBody struct {
	Days int                     `json:"days"`
	From constant.Classification `json:"from"`
}

// List returns the reminder board.
func (h *ReminderHandler) List(c echo.Context) error {
	board, err := h.reminderService.List(c.Request().Context(), currentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, board)
}

// QuickAdd creates a reminder due some days from now.
func (h *ReminderHandler) QuickAdd(c echo.Context) error {
	var req dto.QuickAddReminderRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	req.UserID = currentUser(c)

	r, err := h.reminderService.QuickAdd(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto.ToReminderResponse(r, h.now()))
}

// Get returns one reminder.
func (h *ReminderHandler) Get(c echo.Context) error {
	r, err := h.reminderService.Get(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToReminderResponse(r, h.now()))
}

// Snooze pushes a reminder's due date forward.
func (h *ReminderHandler) Snooze(c echo.Context) error {
	var body snoozeBody
	if err := c.Bind(&body); err != nil {
		return bindError(c)
	}
	days := body.Days
	if days == 0 {
		switch body.From {
		case constant.ClassOverdue:
			days = constant.SnoozeDaysOverdue
		case constant.ClassUpcoming, "":
			days = constant.SnoozeDaysUpcoming
		}
	}

	r, err := h.reminderService.Snooze(c.Request().Context(), dto.SnoozeRequest{
		UserID:     currentUser(c),
		ReminderID: c.Param("id"),
		Days:       days,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToReminderResponse(r, h.now()))
}

// Complete marks a reminder done.
func (h *ReminderHandler) Complete(c echo.Context) error {
	r, err := h.reminderService.Complete(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToReminderResponse(r, h.now()))
}

// Undo reverts a completed reminder.
func (h *ReminderHandler) Undo(c echo.Context) error {
	r, err := h.reminderService.Undo(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToReminderResponse(r, h.now()))
}

// Delete removes a reminder.
func (h *ReminderHandler) Delete(c echo.Context) error {
	if err := h.reminderService.Delete(c.Request().Context(), currentUser(c), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
