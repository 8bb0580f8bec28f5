package handler

import (
	"errors"
	"net/http"
	"strings"

	appErrors "carcare/internal/pkg/errors"
	"carcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the LINE user id set by the upstream auth layer.
const UserIDHeader = "X-User-ID"

const userIDKey = "user_id"

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RequireUser rejects requests without a user id and stores it on the context.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
		if userID == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + UserIDHeader + " header"})
		}
		c.Set(userIDKey, userID)
		return next(c)
	}
}

func currentUser(c echo.Context) string {
	userID, _ := c.Get(userIDKey).(string)
	return userID
}

// respondError maps application errors to HTTP status codes.
func respondError(c echo.Context, log logger.Logger, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appErrors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, appErrors.ErrReminderNotFound),
		errors.Is(err, appErrors.ErrVehicleNotFound),
		errors.Is(err, appErrors.ErrServiceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, appErrors.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, appErrors.ErrUpload), errors.Is(err, appErrors.ErrLineAPI):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		log.Error("Request failed: "+c.Request().Method+" "+c.Path(), err)
		if status == http.StatusInternalServerError {
			return c.JSON(status, ErrorResponse{Error: appErrors.ErrInternalServer.Error()})
		}
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

// bindError reports a malformed request body.
func bindError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErrors.ErrInvalidInput.Error() + ": malformed request body"})
}
