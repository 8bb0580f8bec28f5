package handler

import (
	"net/http"
	"time"

	"carcare/internal/application/dto"
	"carcare/internal/application/service"
	"carcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MaintenanceHandler serves scheduled services and the due-date preview.
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
	log                logger.Logger
	now                func() time.Time
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService service.MaintenanceService, log logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		log:                log,
		now:                time.Now,
	}
}

// Catalog lists the known service types.
func (h *MaintenanceHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, h.maintenanceService.Catalog())
}

// Preview computes a due date for the service form without saving.
func (h *MaintenanceHandler) Preview(c echo.Context) error {
	var req dto.PreviewRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	resp, err := h.maintenanceService.Preview(req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Record saves a completed service and schedules the next one.
func (h *MaintenanceHandler) Record(c echo.Context) error {
	var req dto.RecordServiceRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	req.UserID = currentUser(c)
	req.VehicleID = c.Param("id")

	svc, reminder, err := h.maintenanceService.Record(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto.RecordServiceResponse{
		Service:  dto.ToServiceResponse(svc),
		Reminder: dto.ToReminderResponse(reminder, h.now()),
	})
}

// List splits a vehicle's services into due and coming.
func (h *MaintenanceHandler) List(c echo.Context) error {
	resp, err := h.maintenanceService.ListByVehicle(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Complete moves a service into the vehicle's history.
func (h *MaintenanceHandler) Complete(c echo.Context) error {
	err := h.maintenanceService.Complete(c.Request().Context(), currentUser(c), c.Param("id"), c.Param("serviceId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MaintenanceHandler) Delete(c echo.Context) error {
	err := h.maintenanceService.Delete(c.Request().Context(), currentUser(c), c.Param("id"), c.Param("serviceId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
