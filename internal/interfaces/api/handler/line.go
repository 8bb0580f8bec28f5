package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"carcare/internal/application/dto"
	"carcare/internal/application/service"
	"carcare/internal/domain/constant"
	appErrors "carcare/internal/pkg/errors"
	"carcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Text commands understood by the bot.
const (
	commandList = "list"
	commandHelp = "help"
)

// Postback actions attached to quick reply buttons.
const (
	actionComplete = "complete"
	actionSnooze   = "snooze"
)

// maxQuickReplies is the LINE limit on quick reply buttons per message.
const maxQuickReplies = 13

// LineMessenger is the subset of the LINE client used by the webhook.
type LineMessenger interface {
	ParseRequest(r *http.Request) ([]*linebot.Event, error)
	SendMessages(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error
	PushText(ctx context.Context, to, text string) error
}

// LineHandler handles incoming LINE webhook events.
type LineHandler struct {
	lineClient      LineMessenger
	userService     service.UserService
	reminderService service.ReminderService
	adminUserID     string
	log             logger.Logger
}

// NewLineHandler creates a new LineHandler. adminUserID may be empty.
func NewLineHandler(
	lineClient LineMessenger,
	userService service.UserService,
	reminderService service.ReminderService,
	adminUserID string,
	log logger.Logger,
) *LineHandler {
	return &LineHandler{
		lineClient:      lineClient,
		userService:     userService,
		reminderService: reminderService,
		adminUserID:     adminUserID,
		log:             log,
	}
}

// HandleWebhook is the main entry point for webhook requests.
func (h *LineHandler) HandleWebhook(c echo.Context) error {
	ctx := c.Request().Context()
	events, err := h.lineClient.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			h.log.Warn("Invalid LINE signature received")
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		h.log.Error("Failed to parse LINE webhook request", err)
		return c.String(http.StatusInternalServerError, "Error parsing request")
	}

	for _, event := range events {
		h.log.Info(fmt.Sprintf("Processing event type: %s", event.Type))
		switch event.Type {
		case linebot.EventTypeMessage:
			h.handleMessageEvent(ctx, event)
		case linebot.EventTypeFollow:
			h.handleFollowEvent(ctx, event)
		case linebot.EventTypeUnfollow:
			h.handleUnfollowEvent(ctx, event)
		case linebot.EventTypePostback:
			h.handlePostbackEvent(ctx, event)
		default:
			h.log.Info(fmt.Sprintf("Unhandled event type: %s", event.Type))
		}
	}

	return c.String(http.StatusOK, "OK")
}

func (h *LineHandler) handleFollowEvent(ctx context.Context, event *linebot.Event) {
	userID := event.Source.UserID
	replyToken := event.ReplyToken
	h.log.Info(fmt.Sprintf("User %s followed the bot.", userID))

	if _, err := h.userService.GetOrCreateUser(ctx, userID); err != nil {
		h.replyWithError(ctx, replyToken, "Could not set up your profile. Please try again later.")
		return
	}

	welcome := linebot.NewTextMessage("Welcome to CarCare! I will remind you when your car is due for maintenance.")
	hint := linebot.NewTextMessage(`Type "help" to see what I can do.`)
	if err := h.lineClient.SendMessages(ctx, replyToken, welcome, hint); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send follow reply to user %s", userID), err)
	}

	if h.adminUserID == "" {
		return
	}
	note := fmt.Sprintf("User (ID: %s) followed the bot.", userID)
	if err := h.lineClient.PushText(ctx, h.adminUserID, note); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send follow notification to admin for follower %s", userID), err)
	}
}

func (h *LineHandler) handleUnfollowEvent(ctx context.Context, event *linebot.Event) {
	userID := event.Source.UserID
	h.log.Info(fmt.Sprintf("User %s unfollowed or blocked the bot.", userID))

	// Unfollow events carry no reply token.
	if err := h.userService.DeleteUser(ctx, userID); err != nil {
		h.log.Error(fmt.Sprintf("Failed to delete data of unfollowed user %s", userID), err)
	}
}

func (h *LineHandler) handleMessageEvent(ctx context.Context, event *linebot.Event) {
	userID := event.Source.UserID
	replyToken := event.ReplyToken

	message, ok := event.Message.(*linebot.TextMessage)
	if !ok {
		h.log.Info(fmt.Sprintf("Received non-text message from %s", userID))
		h.replyWithError(ctx, replyToken, "Sorry, I only understand text messages.")
		return
	}

	text := strings.ToLower(strings.TrimSpace(message.Text))
	h.log.Info(fmt.Sprintf("Received text message from %s: %s", userID, text))

	switch text {
	case commandList:
		h.sendReminderList(ctx, replyToken, userID)
	case commandHelp:
		h.sendHowToUse(ctx, replyToken)
	default:
		h.replyWithError(ctx, replyToken, `I did not understand that. Type "help" for the list of commands.`)
	}
}

// handlePostbackEvent applies a quick reply action such as
// "action=complete&id=<reminder id>".
func (h *LineHandler) handlePostbackEvent(ctx context.Context, event *linebot.Event) {
	userID := event.Source.UserID
	replyToken := event.ReplyToken
	data := event.Postback.Data
	h.log.Info(fmt.Sprintf("Received postback from %s: data=%s", userID, data))

	values, err := url.ParseQuery(data)
	if err != nil || values.Get("id") == "" {
		h.log.Warn(fmt.Sprintf("Malformed postback data from user %s: %s", userID, data))
		h.replyWithError(ctx, replyToken, "That action is no longer valid.")
		return
	}
	reminderID := values.Get("id")

	var reply string
	switch values.Get("action") {
	case actionComplete:
		r, err := h.reminderService.Complete(ctx, userID, reminderID)
		if err != nil {
			h.replyWithError(ctx, replyToken, postbackErrorMessage(err))
			return
		}
		reply = fmt.Sprintf("Marked %q as done.", r.Title)
	case actionSnooze:
		days := constant.SnoozeDaysUpcoming
		if values.Get("from") == string(constant.ClassOverdue) {
			days = constant.SnoozeDaysOverdue
		}
		r, err := h.reminderService.Snooze(ctx, dto.SnoozeRequest{UserID: userID, ReminderID: reminderID, Days: days})
		if err != nil {
			h.replyWithError(ctx, replyToken, postbackErrorMessage(err))
			return
		}
		reply = fmt.Sprintf("Snoozed %q until %s.", r.Title, r.DueAt.Format(listDateLayout))
	default:
		h.log.Warn(fmt.Sprintf("Unknown postback action from user %s: %s", userID, data))
		h.replyWithError(ctx, replyToken, "That action is no longer valid.")
		return
	}

	if err := h.lineClient.SendMessages(ctx, replyToken, linebot.NewTextMessage(reply)); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send postback confirmation to user %s", userID), err)
	}
}

const listDateLayout = "Jan 2, 2006"

func (h *LineHandler) sendHowToUse(ctx context.Context, replyToken string) {
	howToUse := `Record a service in the app and I will remind you when the next one is due.

"list" shows your upcoming and overdue reminders, with buttons to mark them done or snooze them.
"help" shows this message.`

	quickReply := linebot.NewQuickReplyItems(
		linebot.NewQuickReplyButton("", linebot.NewMessageAction(commandList, commandList)),
	)
	message := linebot.NewTextMessage(howToUse).WithQuickReplies(quickReply)
	if err := h.lineClient.SendMessages(ctx, replyToken, message); err != nil {
		h.log.Error("Failed to send 'how to use' message", err)
	}
}

func (h *LineHandler) sendReminderList(ctx context.Context, replyToken, userID string) {
	board, err := h.reminderService.List(ctx, userID)
	if err != nil {
		h.replyWithError(ctx, replyToken, "Could not load your reminders.")
		return
	}

	if len(board.Overdue) == 0 && len(board.Upcoming) == 0 {
		if err := h.lineClient.SendMessages(ctx, replyToken, linebot.NewTextMessage("You have no open reminders.")); err != nil {
			h.log.Error(fmt.Sprintf("Failed to send empty list message to user %s", userID), err)
		}
		return
	}

	var builder strings.Builder
	writeSection(&builder, "Overdue", board.Overdue)
	writeSection(&builder, "Upcoming", board.Upcoming)
	listStr := strings.TrimSuffix(builder.String(), "\n")

	var message linebot.SendingMessage = linebot.NewTextMessage(listStr)
	if items := reminderQuickReplies(board); items != nil {
		message = linebot.NewTextMessage(listStr).WithQuickReplies(items)
	}
	if err := h.lineClient.SendMessages(ctx, replyToken, message); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send reminder list to user %s", userID), err)
	}
}

func writeSection(b *strings.Builder, heading string, reminders []dto.ReminderResponse) {
	if len(reminders) == 0 {
		return
	}
	b.WriteString(heading + ":\n")
	for _, r := range reminders {
		line := fmt.Sprintf("- %s (%s)", r.Title, r.DueAt.Format(listDateLayout))
		if r.VehicleName != nil {
			line += " • " + *r.VehicleName
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

// reminderQuickReplies offers done/snooze buttons, overdue reminders first.
func reminderQuickReplies(board *dto.ReminderBoard) *linebot.QuickReplyItems {
	var buttons []*linebot.QuickReplyButton
	add := func(r dto.ReminderResponse, from constant.Classification) {
		if len(buttons)+2 > maxQuickReplies {
			return
		}
		done := fmt.Sprintf("action=%s&id=%s", actionComplete, url.QueryEscape(r.ID))
		snooze := fmt.Sprintf("action=%s&id=%s&from=%s", actionSnooze, url.QueryEscape(r.ID), from)
		buttons = append(buttons,
			linebot.NewQuickReplyButton("", linebot.NewPostbackAction(truncateLabel("Done: "+r.Title), done, "", "", "", "")),
			linebot.NewQuickReplyButton("", linebot.NewPostbackAction(truncateLabel("Snooze: "+r.Title), snooze, "", "", "", "")),
		)
	}
	for _, r := range board.Overdue {
		add(r, constant.ClassOverdue)
	}
	for _, r := range board.Upcoming {
		add(r, constant.ClassUpcoming)
	}
	if len(buttons) == 0 {
		return nil
	}
	return linebot.NewQuickReplyItems(buttons...)
}

// truncateLabel keeps quick reply labels within LINE's 20 character limit.
func truncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= 20 {
		return label
	}
	return string(runes[:19]) + "…"
}

func postbackErrorMessage(err error) string {
	switch {
	case errors.Is(err, appErrors.ErrReminderNotFound):
		return "That reminder no longer exists."
	case errors.Is(err, appErrors.ErrInvalidInput):
		return "That reminder is already done."
	default:
		return "Something went wrong. Please try again later."
	}
}

// replyWithError sends a plain text reply, usually an error message.
func (h *LineHandler) replyWithError(ctx context.Context, replyToken, userMessage string) {
	if err := h.lineClient.SendMessages(ctx, replyToken, linebot.NewTextMessage(userMessage)); err != nil {
		h.log.Error(fmt.Sprintf("Failed to send error reply message: %s", userMessage), err)
	}
}
