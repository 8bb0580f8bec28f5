package router

import (
	"fmt"
	"net/http"

	"carcare/internal/interfaces/api/handler"
	"carcare/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
// LineHandler is optional; the webhook is only mounted when it is set.
type Config struct {
	ReminderHandler    *handler.ReminderHandler
	VehicleHandler     *handler.VehicleHandler
	MaintenanceHandler *handler.MaintenanceHandler
	HistoryHandler     *handler.HistoryHandler
	SettingsHandler    *handler.SettingsHandler
	LineHandler        *handler.LineHandler
	Logger             logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
			"X-Line-Signature", handler.UserIDHeader,
		},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "CarCare is running")
	})

	api := e.Group("/api", handler.RequireUser)

	reminders := api.Group("/reminders")
	reminders.GET("", cfg.ReminderHandler.List)
	reminders.POST("", cfg.ReminderHandler.QuickAdd)
	reminders.GET("/:id", cfg.ReminderHandler.Get)
	reminders.DELETE("/:id", cfg.ReminderHandler.Delete)
	reminders.POST("/:id/snooze", cfg.ReminderHandler.Snooze)
	reminders.POST("/:id/complete", cfg.ReminderHandler.Complete)
	reminders.POST("/:id/undo", cfg.ReminderHandler.Undo)

	vehicles := api.Group("/vehicles")
	vehicles.GET("", cfg.VehicleHandler.List)
	vehicles.POST("", cfg.VehicleHandler.Register)
	vehicles.GET("/:id", cfg.VehicleHandler.Get)
	vehicles.DELETE("/:id", cfg.VehicleHandler.Delete)
	vehicles.GET("/:id/history", cfg.HistoryHandler.ListForVehicle)
	vehicles.GET("/:id/services", cfg.MaintenanceHandler.List)
	vehicles.POST("/:id/services", cfg.MaintenanceHandler.Record)
	vehicles.DELETE("/:id/services/:serviceId", cfg.MaintenanceHandler.Delete)
	vehicles.POST("/:id/services/:serviceId/complete", cfg.MaintenanceHandler.Complete)

	api.GET("/services/catalog", cfg.MaintenanceHandler.Catalog)
	api.POST("/services/preview", cfg.MaintenanceHandler.Preview)

	api.GET("/history", cfg.HistoryHandler.List)

	api.GET("/settings", cfg.SettingsHandler.Get)
	api.PATCH("/settings", cfg.SettingsHandler.Update)
	api.POST("/settings/avatar", cfg.SettingsHandler.UploadAvatar, middleware.BodyLimit("6M"))

	// LINE Platform requires POST for webhook
	if cfg.LineHandler != nil {
		e.POST("/callback", cfg.LineHandler.HandleWebhook)
	} else {
		cfg.Logger.Warn("LINE credentials not configured. Webhook endpoint disabled.")
	}

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
