package handler

import (
	"net/http"

	"carcare/internal/application/dto"
	"carcare/internal/application/service"
	"carcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HistoryHandler serves completed maintenance.
type HistoryHandler struct {
	historyService service.HistoryService
	log            logger.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService, log logger.Logger) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, log: log}
}

func (h *HistoryHandler) List(c echo.Context) error {
	entries, err := h.historyService.ListForUser(c.Request().Context(), currentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToHistoryResponseList(entries))
}

func (h *HistoryHandler) ListForVehicle(c echo.Context) error {
	entries, err := h.historyService.ListForVehicle(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToHistoryResponseList(entries))
}
