package handler

import (
	"net/http"

	"carcare/internal/application/dto"
	"carcare/internal/application/service"
	"carcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// VehicleHandler serves the garage.
type VehicleHandler struct {
	vehicleService service.VehicleService
	log            logger.Logger
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService service.VehicleService, log logger.Logger) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, log: log}
}

func (h *VehicleHandler) Register(c echo.Context) error {
	var req dto.RegisterVehicleRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c)
	}
	req.UserID = currentUser(c)

	v, err := h.vehicleService.Register(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto.ToVehicleResponse(v))
}

func (h *VehicleHandler) List(c echo.Context) error {
	vehicles, err := h.vehicleService.List(c.Request().Context(), currentUser(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToVehicleResponseList(vehicles))
}

func (h *VehicleHandler) Get(c echo.Context) error {
	v, err := h.vehicleService.Get(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto.ToVehicleResponse(v))
}

func (h *VehicleHandler) Delete(c echo.Context) error {
	if err := h.vehicleService.Delete(c.Request().Context(), currentUser(c), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
