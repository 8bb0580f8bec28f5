package handler

import (
	"fmt"
	"net/http"

	"carcare/internal/application/dto"
	"carcare/internal/application/service"
	"carcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MaxAvatarBytes caps avatar uploads.
const MaxAvatarBytes = 5 << 20

const avatarField = "avatar"

// SettingsHandler serves the profile and notification settings.
type SettingsHandler struct {
	userService service.UserService
	log         logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(userService service.UserService, log logger.Logger) *SettingsHandler {
	return &SettingsHandler{userService: userService, log: log}
}

// Get returns the user's settings, creating defaults on first access.
func (h *SettingsHandler) Get(c echo.Context) error {
	u, err := h.userService.GetOrCreateUser(c.Request().Context(), currentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToSettingsResponse(u))
}

// Update applies a partial settings change.
func (h *SettingsHandler) Update(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	req.UserID = currentUser(c)

	u, err := h.userService.UpdateSettings(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToSettingsResponse(u))
}

// UploadAvatar stores the multipart "avatar" file as the profile photo.
func (h *SettingsHandler) UploadAvatar(c echo.Context) error {
	fh, err := c.FormFile(avatarField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("missing %q file", avatarField)})
	}
	if fh.Size > MaxAvatarBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "avatar exceeds 5 MB"})
	}

	file, err := fh.Open()
	if err != nil {
		h.log.Error("Failed to open uploaded avatar", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not read uploaded file"})
	}
	defer file.Close()

	u, err := h.userService.UploadAvatar(c.Request().Context(), currentUser(c), fh.Filename, file)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToSettingsResponse(u))
}
